package models

import "time"

// ProjectActivity is an append-only audit entry on a project timeline.
// Writes are best-effort; callers swallow failures.
type ProjectActivity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"index;not null" json:"project_id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ActivityType string    `gorm:"size:100;index" json:"activity_type"` // editor_change_approved, editor_change_rejected, ...
	Description  string    `gorm:"size:1000" json:"description"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (ProjectActivity) TableName() string { return "project_activities" }

// Notification is an in-app notification for a user.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Type      string    `gorm:"size:50;not null" json:"type"` // decision, collaboration, system
	Title     string    `gorm:"size:200" json:"title"`
	Message   string    `gorm:"size:1000" json:"message"`
	ProjectID *uint     `json:"project_id"`
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
