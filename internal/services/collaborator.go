package services

import (
	"errors"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"gorm.io/gorm"
)

// IsActiveCollaborator reports whether the user holds an active
// collaboration grant on the project.
func IsActiveCollaborator(db *gorm.DB, projectID, userID uint) bool {
	var count int64
	db.Model(&models.ProjectCollaborator{}).
		Where("project_id = ? AND user_id = ? AND status = ?", projectID, userID, models.CollabStatusActive).
		Count(&count)
	return count > 0
}

type CollaboratorService struct {
	db *gorm.DB
}

func NewCollaboratorService(db *gorm.DB) *CollaboratorService {
	return &CollaboratorService{db: db}
}

type InviteCollaboratorRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"omitempty,oneof=coauthor editor translator producer reviewer"`
}

// Invite creates a pending collaboration grant. Owner only.
func (s *CollaboratorService) Invite(projectID, ownerID uint, req *InviteCollaboratorRequest) (*models.ProjectCollaborator, error) {
	project, err := s.ownedProject(projectID, ownerID)
	if err != nil {
		return nil, err
	}
	if req.UserID == project.OwnerID {
		return nil, errors.New("owner cannot be invited as collaborator")
	}

	role := req.Role
	if role == "" {
		role = models.CollabRoleEditor
	}

	collab := models.ProjectCollaborator{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      role,
		Status:    models.CollabStatusPending,
	}
	if err := s.db.Create(&collab).Error; err != nil {
		return nil, err
	}
	return &collab, nil
}

// Accept activates a pending grant. Only the invited user may accept.
func (s *CollaboratorService) Accept(collabID, userID uint) (*models.ProjectCollaborator, error) {
	var collab models.ProjectCollaborator
	if err := s.db.First(&collab, collabID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollabNotFound
		}
		return nil, err
	}
	if collab.UserID != userID {
		return nil, ErrAccessDenied
	}
	if err := s.db.Model(&collab).Update("status", models.CollabStatusActive).Error; err != nil {
		return nil, err
	}
	return &collab, nil
}

// Revoke marks a grant revoked. Owner only.
func (s *CollaboratorService) Revoke(projectID, ownerID, collabID uint) error {
	if _, err := s.ownedProject(projectID, ownerID); err != nil {
		return err
	}

	result := s.db.Model(&models.ProjectCollaborator{}).
		Where("id = ? AND project_id = ?", collabID, projectID).
		Update("status", models.CollabStatusRevoked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCollabNotFound
	}
	return nil
}

// ListByProject returns collaborators visible to owner or members.
func (s *CollaboratorService) ListByProject(projectID, userID uint) ([]models.ProjectCollaborator, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if project.OwnerID != userID && !IsActiveCollaborator(s.db, projectID, userID) {
		return nil, ErrAccessDenied
	}

	var collabs []models.ProjectCollaborator
	err := s.db.Where("project_id = ?", projectID).
		Preload("User").
		Order("created_at ASC").
		Find(&collabs).Error
	return collabs, err
}

func (s *CollaboratorService) ownedProject(projectID, ownerID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if project.OwnerID != ownerID {
		return nil, ErrAccessDenied
	}
	return &project, nil
}
