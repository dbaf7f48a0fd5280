package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Decision constants
const (
	DecisionApprove         = "approve"
	DecisionReject          = "reject"
	DecisionRequestRevision = "request_revision"
)

// ApprovalDecision records an owner's ruling on a pending change.
// Rows are append-only: a resubmitted change gets a second row rather
// than mutating the first.
type ApprovalDecision struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	PendingChangeID  string         `gorm:"index;size:36;not null" json:"pending_change_id"`
	PendingChange    *PendingChange `gorm:"foreignKey:PendingChangeID" json:"pending_change,omitempty"`
	OwnerID          uint           `gorm:"index;not null" json:"owner_id"`
	Decision         string         `gorm:"size:50;not null" json:"decision"`
	FeedbackNotes    string         `gorm:"type:text" json:"feedback_notes"`
	SuggestedChanges string         `gorm:"type:text" json:"suggested_changes"`
	DecisionMetadata string         `gorm:"type:text" json:"decision_metadata"` // JSON: decided_at, project_title
	CreatedAt        time.Time      `json:"created_at"`
}

func (ApprovalDecision) TableName() string { return "approval_decisions" }

func (d *ApprovalDecision) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// ValidDecision reports whether d is one of the accepted decision values.
func ValidDecision(d string) bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionRequestRevision:
		return true
	}
	return false
}

// StatusForDecision maps a decision to the resulting pending change status.
func StatusForDecision(d string) string {
	switch d {
	case DecisionApprove:
		return ChangeStatusApproved
	case DecisionReject:
		return ChangeStatusRejected
	case DecisionRequestRevision:
		return ChangeStatusNeedsRevision
	}
	return ""
}
