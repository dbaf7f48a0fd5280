package services

import (
	"errors"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"gorm.io/gorm"
)

// PendingChangeService is the only component that creates pending change
// rows; decisions on them go through the approval service so its
// authorization checks cannot be bypassed.
type PendingChangeService struct {
	db *gorm.DB
}

func NewPendingChangeService(db *gorm.DB) *PendingChangeService {
	return &PendingChangeService{db: db}
}

type SubmitChangeRequest struct {
	ContentType       string `json:"content_type" binding:"required"`
	ChapterID         *uint  `json:"chapter_id"`
	ProposedContent   string `json:"proposed_content" binding:"required"`
	ChangeDescription string `json:"change_description"`
	EditorNotes       string `json:"editor_notes"`
	ContentTitle      string `json:"content_title"`
}

// Submit creates a pending change for an owner or active collaborator.
// The original content snapshot is captured at submission time.
func (s *PendingChangeService) Submit(projectID, editorID uint, req *SubmitChangeRequest) (*models.PendingChange, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if project.OwnerID != editorID && !IsActiveCollaborator(s.db, projectID, editorID) {
		return nil, ErrAccessDenied
	}

	if !models.ValidContentType(req.ContentType) {
		return nil, ErrInvalidChangeReq
	}
	// chapter_id is set if and only if the target is a chapter
	if (req.ContentType == models.ContentTypeChapter) != (req.ChapterID != nil) {
		return nil, ErrInvalidChangeReq
	}

	original, title, err := s.snapshotOriginal(&project, req)
	if err != nil {
		return nil, err
	}
	if req.ContentTitle != "" {
		title = req.ContentTitle
	}

	change := models.PendingChange{
		ProjectID:         projectID,
		EditorID:          editorID,
		ContentType:       req.ContentType,
		ChapterID:         req.ChapterID,
		OriginalContent:   original,
		ProposedContent:   req.ProposedContent,
		ChangeDescription: req.ChangeDescription,
		EditorNotes:       req.EditorNotes,
		ContentTitle:      title,
		Status:            models.ChangeStatusPending,
	}
	if err := s.db.Create(&change).Error; err != nil {
		return nil, err
	}

	return &change, nil
}

func (s *PendingChangeService) snapshotOriginal(project *models.Project, req *SubmitChangeRequest) (content, title string, err error) {
	switch req.ContentType {
	case models.ContentTypeChapter:
		var chapter models.ProjectChapter
		if err := s.db.Where("id = ? AND project_id = ?", *req.ChapterID, project.ID).
			First(&chapter).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", "", ErrChapterNotFound
			}
			return "", "", err
		}
		return chapter.Content, chapter.Title, nil
	case models.ContentTypeProjectContent:
		var pc models.ProjectContent
		if err := s.db.Where("project_id = ?", project.ID).First(&pc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", project.Title, nil
			}
			return "", "", err
		}
		return pc.Content, project.Title, nil
	default: // outline
		return project.Synopsis, project.Title + " (outline)", nil
	}
}

// GetByProject returns all pending changes for a project, newest first.
func (s *PendingChangeService) GetByProject(projectID uint) ([]models.PendingChange, error) {
	var changes []models.PendingChange
	err := s.db.Where("project_id = ?", projectID).
		Preload("Editor").
		Order("created_at DESC").
		Find(&changes).Error
	return changes, err
}

// GetByID returns a single pending change.
func (s *PendingChangeService) GetByID(id string) (*models.PendingChange, error) {
	var change models.PendingChange
	if err := s.db.Preload("Editor").First(&change, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChangeNotFound
		}
		return nil, err
	}
	return &change, nil
}
