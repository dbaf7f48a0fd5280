package services

import (
	"errors"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
	Title    string `form:"title"`
	Format   string `form:"format"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

type CreateProjectRequest struct {
	Title      string `json:"title" binding:"required"`
	Logline    string `json:"logline"`
	Synopsis   string `json:"synopsis"`
	Format     string `json:"format" binding:"omitempty,oneof=novel screenplay"`
	Genre      string `json:"genre"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=private preview public"`
}

type UpdateProjectRequest struct {
	Title      string  `json:"title"`
	Logline    string  `json:"logline"`
	Synopsis   *string `json:"synopsis"`
	Genre      string  `json:"genre"`
	Visibility string  `json:"visibility" binding:"omitempty,oneof=private preview public"`
}

// List returns projects the user owns or actively collaborates on.
func (s *ProjectService) List(userID uint, req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	var projects []models.Project
	var total int64

	memberIDs := s.db.Model(&models.ProjectCollaborator{}).
		Select("project_id").
		Where("user_id = ? AND status = ?", userID, models.CollabStatusActive)

	query := s.db.Model(&models.Project{}).
		Where("owner_id = ? OR id IN (?)", userID, memberIDs)

	if req.Title != "" {
		query = query.Where("title LIKE ?", "%"+req.Title+"%")
	}
	if req.Format != "" {
		query = query.Where("format = ?", req.Format)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// Get returns a project if the user is its owner or an active collaborator.
func (s *ProjectService) Get(id, userID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Preload("Owner").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if project.OwnerID != userID && !IsActiveCollaborator(s.db, id, userID) {
		return nil, ErrAccessDenied
	}
	return &project, nil
}

// Create creates a new project owned by the user.
func (s *ProjectService) Create(userID uint, req *CreateProjectRequest) (*models.Project, error) {
	format := req.Format
	if format == "" {
		format = "novel"
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = "private"
	}

	project := models.Project{
		OwnerID:    userID,
		Title:      req.Title,
		Logline:    req.Logline,
		Synopsis:   req.Synopsis,
		Format:     format,
		Genre:      req.Genre,
		Visibility: visibility,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update updates a project. Owner only.
func (s *ProjectService) Update(id, userID uint, req *UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if project.OwnerID != userID {
		return nil, ErrAccessDenied
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Logline != "" {
		updates["logline"] = req.Logline
	}
	if req.Synopsis != nil {
		updates["synopsis"] = *req.Synopsis
	}
	if req.Genre != "" {
		updates["genre"] = req.Genre
	}
	if req.Visibility != "" {
		updates["visibility"] = req.Visibility
	}

	if len(updates) > 0 {
		if err := s.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &project, nil
}

// Delete soft-deletes a project. Owner only.
func (s *ProjectService) Delete(id, userID uint) error {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	if project.OwnerID != userID {
		return ErrAccessDenied
	}
	return s.db.Delete(&project).Error
}
