package services

import (
	"errors"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"gorm.io/gorm"
)

type ChapterService struct {
	db *gorm.DB
}

func NewChapterService(db *gorm.DB) *ChapterService {
	return &ChapterService{db: db}
}

type CreateChapterRequest struct {
	ChapterNumber int    `json:"chapter_number" binding:"required,min=1"`
	Title         string `json:"title"`
	Content       string `json:"content"`
}

type UpdateChapterRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
	Status  string  `json:"status" binding:"omitempty,oneof=draft published"`
}

// ListByProject returns chapters visible to owner or active collaborators.
func (s *ChapterService) ListByProject(projectID, userID uint) ([]models.ProjectChapter, error) {
	if err := s.authorize(projectID, userID); err != nil {
		return nil, err
	}

	var chapters []models.ProjectChapter
	err := s.db.Where("project_id = ?", projectID).
		Order("chapter_number ASC").
		Find(&chapters).Error
	return chapters, err
}

// Get returns a single chapter.
func (s *ChapterService) Get(projectID, chapterID, userID uint) (*models.ProjectChapter, error) {
	if err := s.authorize(projectID, userID); err != nil {
		return nil, err
	}

	var chapter models.ProjectChapter
	if err := s.db.Where("id = ? AND project_id = ?", chapterID, projectID).
		First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}
	return &chapter, nil
}

// Create adds a chapter. Owner only; collaborators propose edits through
// the pending change workflow instead.
func (s *ChapterService) Create(projectID, userID uint, req *CreateChapterRequest) (*models.ProjectChapter, error) {
	if err := s.authorizeOwner(projectID, userID); err != nil {
		return nil, err
	}

	chapter := models.ProjectChapter{
		ProjectID:     projectID,
		ChapterNumber: req.ChapterNumber,
		Title:         req.Title,
		Content:       req.Content,
		WordCount:     CountWords(req.Content),
		Status:        "draft",
	}
	if err := s.db.Create(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

// Update edits a chapter directly. Owner only.
func (s *ChapterService) Update(projectID, chapterID, userID uint, req *UpdateChapterRequest) (*models.ProjectChapter, error) {
	if err := s.authorizeOwner(projectID, userID); err != nil {
		return nil, err
	}

	var chapter models.ProjectChapter
	if err := s.db.Where("id = ? AND project_id = ?", chapterID, projectID).
		First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
		updates["word_count"] = CountWords(*req.Content)
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&chapter).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &chapter, nil
}

// Delete removes a chapter. Owner only.
func (s *ChapterService) Delete(projectID, chapterID, userID uint) error {
	if err := s.authorizeOwner(projectID, userID); err != nil {
		return err
	}

	result := s.db.Where("id = ? AND project_id = ?", chapterID, projectID).
		Delete(&models.ProjectChapter{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChapterNotFound
	}
	return nil
}

func (s *ChapterService) authorize(projectID, userID uint) error {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	if project.OwnerID != userID && !IsActiveCollaborator(s.db, projectID, userID) {
		return ErrAccessDenied
	}
	return nil
}

func (s *ChapterService) authorizeOwner(projectID, userID uint) error {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	if project.OwnerID != userID {
		return ErrAccessDenied
	}
	return nil
}
