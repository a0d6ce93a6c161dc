package api

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/repository"
)

// ResumeHandler serves the resume entry CRUD endpoints.
type ResumeHandler struct {
	resume *repository.ResumeRepo
}

// NewResumeHandler constructs the handler.
func NewResumeHandler(resume *repository.ResumeRepo) *ResumeHandler {
	return &ResumeHandler{resume: resume}
}

type resumeEntryRequest struct {
	Section    string `json:"section" binding:"required"`
	Content    any    `json:"content" binding:"required"`
	OrderIndex int    `json:"order_index"`
}

// List returns every entry grouped by section and ordered within it.
func (h *ResumeHandler) List(c *gin.Context) {
	grouped, err := h.resume.GroupedBySection(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("list resume failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	OK(c, grouped)
}

// Create inserts a new entry.
func (h *ResumeHandler) Create(c *gin.Context) {
	var req resumeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Section and content are required")
		return
	}

	id, err := h.resume.Create(c.Request.Context(), req.Section, req.Content, req.OrderIndex)
	if err != nil {
		middleware.LoggerFromContext(c).Error("create resume entry failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}

	Created(c, gin.H{
		"id":          id,
		"section":     req.Section,
		"content":     req.Content,
		"order_index": req.OrderIndex,
	})
}

// Update rewrites an entry by id.
func (h *ResumeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req resumeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Section and content are required")
		return
	}

	if err := h.resume.Update(c.Request.Context(), id, req.Section, req.Content, req.OrderIndex); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Resume entry not found")
			return
		}
		middleware.LoggerFromContext(c).Error("update resume entry failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}

	OK(c, gin.H{
		"id":          id,
		"section":     req.Section,
		"content":     req.Content,
		"order_index": req.OrderIndex,
	})
}

// Delete removes an entry by id.
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.resume.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Resume entry not found")
			return
		}
		middleware.LoggerFromContext(c).Error("delete resume entry failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	Message(c, "Resume entry deleted")
}
