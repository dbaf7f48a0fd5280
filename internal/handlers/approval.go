package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/middleware"
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApprovalHandler serves the editor-change review endpoints. These keep
// the legacy wire format ({success, items, pendingChanges} and flat
// {error} bodies) that the web client depends on, so they bypass the
// unified response envelope used elsewhere.
type ApprovalHandler struct {
	approvalService *services.ApprovalService
	changeService   *services.PendingChangeService
}

func NewApprovalHandler(db *gorm.DB) *ApprovalHandler {
	return &ApprovalHandler{
		approvalService: services.NewApprovalService(db),
		changeService:   services.NewPendingChangeService(db),
	}
}

// ListChanges returns all change records for a project, newest first
// GET /api/projects/:id/changes
func (h *ApprovalHandler) ListChanges(c *gin.Context) {
	projectID, ok := parseProjectID(c)
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)

	result, err := h.approvalService.ListChanges(projectID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, services.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to load changes",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"items":          result.Items,
		"pendingChanges": result.PendingChanges,
	})
}

// Decide records an approval decision on a pending change and, on
// approval, applies the proposed content
// POST /api/projects/:id/decisions
func (h *ApprovalHandler) Decide(c *gin.Context) {
	projectID, ok := parseProjectID(c)
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)

	var req services.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.approvalService.Decide(projectID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingChangeID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "pendingChangeId is required"})
		case errors.Is(err, services.ErrInvalidDecision):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid decision. Must be approve, reject, or request_revision"})
		case errors.Is(err, services.ErrProjectNotFound), errors.Is(err, services.ErrAccessDenied):
			// Deliberately indistinguishable: a caller probing project
			// IDs cannot tell absent from forbidden.
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found or access denied"})
		case errors.Is(err, services.ErrChangeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pending change not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to process decision",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"decisionId":     result.DecisionID,
		"decision":       result.Decision,
		"message":        result.Message,
		"changesApplied": result.ChangesApplied,
	})
}

// SubmitChange files a new pending change against a project
// POST /api/projects/:id/changes
func (h *ApprovalHandler) SubmitChange(c *gin.Context) {
	projectID, ok := parseProjectID(c)
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)

	var req services.SubmitChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	change, err := h.changeService.Submit(projectID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidChangeReq), errors.Is(err, services.ErrChapterNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrProjectNotFound), errors.Is(err, services.ErrAccessDenied):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found or access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to submit change",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"change":  change,
	})
}

func parseProjectID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return 0, false
	}
	return uint(id), true
}
