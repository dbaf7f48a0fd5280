package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pending change content type constants
const (
	ContentTypeChapter        = "chapter"
	ContentTypeProjectContent = "project_content"
	ContentTypeOutline        = "outline"
)

// Pending change status constants
const (
	ChangeStatusPending       = "pending"
	ChangeStatusApproved      = "approved"
	ChangeStatusRejected      = "rejected"
	ChangeStatusNeedsRevision = "needs_revision"
)

// PendingChange is a proposed content edit awaiting the owner's review.
// Snapshots carry the full text, not diffs. ChapterID is set if and only
// if ContentType is chapter. UpdatedAt is the concurrency timestamp: the
// latest decision wins and there is no optimistic lock.
type PendingChange struct {
	ID                string     `gorm:"primaryKey;size:36" json:"id"`
	ProjectID         uint       `gorm:"index;not null" json:"project_id"`
	Project           *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	EditorID          uint       `gorm:"index;not null" json:"editor_id"`
	Editor            *User      `gorm:"foreignKey:EditorID" json:"editor,omitempty"`
	ContentType       string     `gorm:"size:50;not null" json:"content_type"`
	ChapterID         *uint      `json:"chapter_id"`
	OriginalContent   string     `gorm:"type:text" json:"original_content"`
	ProposedContent   string     `gorm:"type:text" json:"proposed_content"`
	ChangeDescription string     `gorm:"size:1000" json:"change_description"`
	EditorNotes       string     `gorm:"type:text" json:"editor_notes"`
	ContentTitle      string     `gorm:"size:200" json:"content_title"`
	Status            string     `gorm:"size:20;default:pending;index" json:"status"`
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (PendingChange) TableName() string { return "pending_changes" }

func (pc *PendingChange) BeforeCreate(tx *gorm.DB) error {
	if pc.ID == "" {
		pc.ID = uuid.NewString()
	}
	return nil
}

// ValidContentType reports whether t is a recognized content target.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeChapter, ContentTypeProjectContent, ContentTypeOutline:
		return true
	}
	return false
}
