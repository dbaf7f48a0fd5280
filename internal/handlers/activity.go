package handlers

import (
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/middleware"
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/services"
	"github.com/bharadwajaaniseti/storyfoundry-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActivityHandler struct {
	activityService *services.ActivityService
	projectService  *services.ProjectService
}

func NewActivityHandler(db *gorm.DB) *ActivityHandler {
	return &ActivityHandler{
		activityService: services.NewActivityService(db),
		projectService:  services.NewProjectService(db),
	}
}

// List returns a project's activity timeline, newest first
// GET /api/projects/:id/activity
func (h *ActivityHandler) List(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	// Membership check reuses the project read path
	if _, err := h.projectService.Get(projectID, middleware.GetUserID(c)); err != nil {
		writeProjectError(c, err)
		return
	}

	var req services.ActivityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.activityService.ListByProject(projectID, &req)
	if err != nil {
		response.ServerError(c, "failed to load activity")
		return
	}
	response.Success(c, result)
}
