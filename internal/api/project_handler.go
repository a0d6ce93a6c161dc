package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/repository"
)

// ProjectHandler serves the project CRUD endpoints.
type ProjectHandler struct {
	projects *repository.ProjectRepo
}

// NewProjectHandler constructs the handler.
func NewProjectHandler(projects *repository.ProjectRepo) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type projectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Image       *string  `json:"image"`
	Stack       []string `json:"stack"`
	LiveURL     *string  `json:"live_url"`
	GithubURL   *string  `json:"github_url"`
}

func (r projectRequest) input() repository.ProjectInput {
	return repository.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
		Stack:       r.Stack,
		LiveURL:     r.LiveURL,
		GithubURL:   r.GithubURL,
	}
}

// List returns all projects, optionally filtered by ?category=.
func (h *ProjectHandler) List(c *gin.Context) {
	rows, err := h.projects.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		middleware.LoggerFromContext(c).Error("list projects failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	OK(c, rows)
}

// Get returns a single project by id.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	row, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		middleware.LoggerFromContext(c).Error("get project failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	OK(c, row)
}

// Create inserts a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Title, description, and category are required")
		return
	}

	id, err := h.projects.Create(c.Request.Context(), req.input())
	if err != nil {
		middleware.LoggerFromContext(c).Error("create project failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}

	OK(c, gin.H{
		"id":          id,
		"title":       req.Title,
		"description": req.Description,
		"category":    req.Category,
		"image":       req.Image,
		"stack":       repository.ParseStack(req.Stack),
		"live_url":    req.LiveURL,
		"github_url":  req.GithubURL,
	})
}

// Update rewrites a project by id.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Title, description, and category are required")
		return
	}

	if err := h.projects.Update(c.Request.Context(), id, req.input()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		middleware.LoggerFromContext(c).Error("update project failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}

	OK(c, gin.H{
		"id":          id,
		"title":       req.Title,
		"description": req.Description,
		"category":    req.Category,
		"image":       req.Image,
		"stack":       repository.ParseStack(req.Stack),
		"live_url":    req.LiveURL,
		"github_url":  req.GithubURL,
	})
}

// Delete removes a project by id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Project not found")
			return
		}
		middleware.LoggerFromContext(c).Error("delete project failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	Message(c, "Project deleted successfully")
}

// pathID parses the :id path segment, replying 400 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
