package models

import (
	"time"

	"gorm.io/gorm"
)

// Collaborator role constants
const (
	CollabRoleCoauthor   = "coauthor"
	CollabRoleEditor     = "editor"
	CollabRoleTranslator = "translator"
	CollabRoleProducer   = "producer"
	CollabRoleReviewer   = "reviewer"
)

// Collaborator status constants
const (
	CollabStatusPending = "pending"
	CollabStatusActive  = "active"
	CollabStatusRevoked = "revoked"
)

// ProjectCollaborator represents a user's collaboration grant on a project.
// Only grants with status=active confer access.
type ProjectCollaborator struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"uniqueIndex:idx_collab_project_user;not null" json:"project_id"`
	Project   *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	UserID    uint           `gorm:"uniqueIndex:idx_collab_project_user;not null" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role      string         `gorm:"size:50;default:editor" json:"role"`
	Status    string         `gorm:"size:20;default:pending" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProjectCollaborator) TableName() string { return "project_collaborators" }
