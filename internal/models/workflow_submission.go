package models

import (
	"time"
)

// WorkflowSubmission is the broader submission/tracking record merged
// into the unified change list. The content applier writes one with
// AutoApplied=true after an approved change lands in canonical storage.
type WorkflowSubmission struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ProjectID      uint      `gorm:"index;not null" json:"project_id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	User           *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SubmissionType string    `gorm:"size:50;not null" json:"submission_type"` // content_update, chapter_update, outline_update
	Title          string    `gorm:"size:200" json:"title"`
	Description    string    `gorm:"size:1000" json:"description"`
	Content        string    `gorm:"type:text" json:"content"`
	Status         string    `gorm:"size:20;default:applied" json:"status"`
	AutoApplied    bool      `gorm:"default:false" json:"auto_applied"`
	DecisionID     *string   `gorm:"size:36" json:"decision_id"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (WorkflowSubmission) TableName() string { return "workflow_submissions" }
