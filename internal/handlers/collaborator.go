package handlers

import (
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/middleware"
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/services"
	"github.com/bharadwajaaniseti/storyfoundry-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CollaboratorHandler struct {
	collabService *services.CollaboratorService
}

func NewCollaboratorHandler(db *gorm.DB) *CollaboratorHandler {
	return &CollaboratorHandler{collabService: services.NewCollaboratorService(db)}
}

// List returns a project's collaborators
// GET /api/projects/:id/collaborators
func (h *CollaboratorHandler) List(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	collabs, err := h.collabService.ListByProject(projectID, middleware.GetUserID(c))
	if err != nil {
		writeProjectError(c, err)
		return
	}
	response.Success(c, collabs)
}

// Invite invites a user onto a project (owner only)
// POST /api/projects/:id/collaborators
func (h *CollaboratorHandler) Invite(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req services.InviteCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	collab, err := h.collabService.Invite(projectID, middleware.GetUserID(c), &req)
	if err != nil {
		writeProjectError(c, err)
		return
	}
	response.Created(c, collab)
}

// Accept accepts a pending invitation addressed to the caller
// POST /api/collaborations/:id/accept
func (h *CollaboratorHandler) Accept(c *gin.Context) {
	collabID, ok := paramID(c, "id")
	if !ok {
		return
	}

	collab, err := h.collabService.Accept(collabID, middleware.GetUserID(c))
	if err != nil {
		writeProjectError(c, err)
		return
	}
	response.Success(c, collab)
}

// Revoke removes a collaborator from a project (owner only)
// DELETE /api/projects/:id/collaborators/:collabId
func (h *CollaboratorHandler) Revoke(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	collabID, ok := paramID(c, "collabId")
	if !ok {
		return
	}

	if err := h.collabService.Revoke(projectID, middleware.GetUserID(c), collabID); err != nil {
		writeProjectError(c, err)
		return
	}
	response.Success(c, gin.H{"revoked": true})
}
