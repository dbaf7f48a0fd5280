package handlers

import (
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/middleware"
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/services"
	"github.com/bharadwajaaniseti/storyfoundry-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{notificationService: services.NewNotificationService(db)}
}

// List returns the caller's notifications with an unread count
// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	var req services.NotificationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.notificationService.ListByUser(middleware.GetUserID(c), &req)
	if err != nil {
		response.ServerError(c, "failed to load notifications")
		return
	}
	response.Success(c, result)
}

// MarkRead marks a single notification as read
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(id, middleware.GetUserID(c)); err != nil {
		response.NotFound(c, "notification not found")
		return
	}
	response.Success(c, gin.H{"read": true})
}

// MarkAllRead marks all of the caller's notifications as read
// PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(middleware.GetUserID(c)); err != nil {
		response.ServerError(c, "failed to mark notifications read")
		return
	}
	response.Success(c, gin.H{"read": true})
}
