package services

import (
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"github.com/bharadwajaaniseti/storyfoundry-backend/pkg/logger"
	"gorm.io/gorm"
)

// ActivityService appends entries to a project's activity timeline.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record writes an activity entry. Failures are logged and swallowed;
// the timeline is best-effort and never fails the parent operation.
func (s *ActivityService) Record(projectID, userID uint, activityType, description string) {
	entry := models.ProjectActivity{
		ProjectID:    projectID,
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		logger.Warn().Err(err).Uint("project_id", projectID).Str("type", activityType).
			Msg("failed to record project activity")
	}
}

type ActivityListRequest struct {
	Page     int `form:"page" binding:"min=1"`
	PageSize int `form:"page_size" binding:"min=1,max=100"`
}

type ActivityListResponse struct {
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
	Items    []models.ProjectActivity `json:"items"`
}

// ListByProject returns the activity timeline, newest first.
func (s *ActivityService) ListByProject(projectID uint, req *ActivityListRequest) (*ActivityListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var entries []models.ProjectActivity
	var total int64

	query := s.db.Model(&models.ProjectActivity{}).Where("project_id = ?", projectID)
	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).
		Preload("User").
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return &ActivityListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    entries,
	}, nil
}
