package handlers

import (
	"errors"

	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/middleware"
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/services"
	"github.com/bharadwajaaniseti/storyfoundry-backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ChapterHandler struct {
	chapterService *services.ChapterService
}

func NewChapterHandler(db *gorm.DB) *ChapterHandler {
	return &ChapterHandler{chapterService: services.NewChapterService(db)}
}

// List returns a project's chapters in order
// GET /api/projects/:id/chapters
func (h *ChapterHandler) List(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	chapters, err := h.chapterService.ListByProject(projectID, middleware.GetUserID(c))
	if err != nil {
		writeChapterError(c, err)
		return
	}
	response.Success(c, chapters)
}

// Get returns a single chapter
// GET /api/projects/:id/chapters/:chapterId
func (h *ChapterHandler) Get(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	chapterID, ok := paramID(c, "chapterId")
	if !ok {
		return
	}

	chapter, err := h.chapterService.Get(projectID, chapterID, middleware.GetUserID(c))
	if err != nil {
		writeChapterError(c, err)
		return
	}
	response.Success(c, chapter)
}

// Create adds a chapter to a project
// POST /api/projects/:id/chapters
func (h *ChapterHandler) Create(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req services.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	chapter, err := h.chapterService.Create(projectID, middleware.GetUserID(c), &req)
	if err != nil {
		writeChapterError(c, err)
		return
	}
	response.Created(c, chapter)
}

// Update edits a chapter directly (owner only; editors go through
// the pending-change workflow instead)
// PUT /api/projects/:id/chapters/:chapterId
func (h *ChapterHandler) Update(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	chapterID, ok := paramID(c, "chapterId")
	if !ok {
		return
	}

	var req services.UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	chapter, err := h.chapterService.Update(projectID, chapterID, middleware.GetUserID(c), &req)
	if err != nil {
		writeChapterError(c, err)
		return
	}
	response.Success(c, chapter)
}

// Delete removes a chapter
// DELETE /api/projects/:id/chapters/:chapterId
func (h *ChapterHandler) Delete(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	chapterID, ok := paramID(c, "chapterId")
	if !ok {
		return
	}

	if err := h.chapterService.Delete(projectID, chapterID, middleware.GetUserID(c)); err != nil {
		writeChapterError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func writeChapterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		response.NotFound(c, "project not found")
	case errors.Is(err, services.ErrChapterNotFound):
		response.NotFound(c, "chapter not found")
	case errors.Is(err, services.ErrAccessDenied):
		response.Forbidden(c, "access denied")
	default:
		response.Error(c, err)
	}
}
