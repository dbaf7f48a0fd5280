package services

import (
	"context"
	"errors"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"github.com/bharadwajaaniseti/storyfoundry-backend/pkg/logger"
	"gorm.io/gorm"
)

// NotificationService persists and serves in-app notifications.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Deliver processes a queued notification task by writing the
// notification row. Used as the task queue processor.
func (s *NotificationService) Deliver(ctx context.Context, task *NotificationTask) error {
	notification := models.Notification{
		UserID:  task.UserID,
		Type:    task.Type,
		Title:   task.Title,
		Message: task.Message,
	}
	if task.ProjectID != 0 {
		pid := task.ProjectID
		notification.ProjectID = &pid
	}

	if err := s.db.WithContext(ctx).Create(&notification).Error; err != nil {
		logger.Error().Err(err).Uint("user_id", task.UserID).Msg("failed to deliver notification")
		return err
	}
	return nil
}

type NotificationListRequest struct {
	Page       int  `form:"page" binding:"min=1"`
	PageSize   int  `form:"page_size" binding:"min=1,max=100"`
	UnreadOnly bool `form:"unread_only"`
}

type NotificationListResponse struct {
	Total    int64                 `json:"total"`
	Unread   int64                 `json:"unread"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	Items    []models.Notification `json:"items"`
}

// ListByUser returns a user's notifications, newest first.
func (s *NotificationService) ListByUser(userID uint, req *NotificationListRequest) (*NotificationListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if req.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	query.Count(&total)

	var unread int64
	s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread)

	var items []models.Notification
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return &NotificationListResponse{
		Total:    total,
		Unread:   unread,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}

// MarkRead marks one notification read. Only the recipient may do so.
func (s *NotificationService) MarkRead(id, userID uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("notification not found")
	}
	return nil
}

// MarkAllRead marks all of a user's notifications read.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
