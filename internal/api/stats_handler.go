package api

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/repository"
)

// StatsHandler serves the homepage counter endpoints.
type StatsHandler struct {
	stats *repository.StatsRepo
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(stats *repository.StatsRepo) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// List returns all stats in display order.
func (h *StatsHandler) List(c *gin.Context) {
	rows, err := h.stats.List(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("list stats failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	OK(c, rows)
}

type statUpsertRequest struct {
	StatKey      string `json:"stat_key" binding:"required"`
	StatLabel    string `json:"stat_label" binding:"required"`
	StatValue    int    `json:"stat_value"`
	DisplayOrder int    `json:"display_order"`
}

// Upsert creates a stat or overwrites the row with the same stat_key.
func (h *StatsHandler) Upsert(c *gin.Context) {
	var req statUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "stat_key and stat_label are required")
		return
	}

	if err := h.stats.Upsert(c.Request.Context(), req.StatKey, req.StatValue, req.StatLabel, req.DisplayOrder); err != nil {
		middleware.LoggerFromContext(c).Error("upsert stat failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	Message(c, "Stat created/updated successfully")
}

type statsBulkUpdateRequest struct {
	Stats []repository.StatUpdate `json:"stats" binding:"required"`
}

// BulkUpdate updates value and label for each submitted stat_key.
func (h *StatsHandler) BulkUpdate(c *gin.Context) {
	var req statsBulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Stats array is required")
		return
	}

	if err := h.stats.UpdateValues(c.Request.Context(), req.Stats); err != nil {
		middleware.LoggerFromContext(c).Error("bulk update stats failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	Message(c, "Stats updated successfully")
}

// Delete removes a stat by its ?key= query parameter.
func (h *StatsHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		BadRequest(c, "Query param key is required")
		return
	}

	if err := h.stats.Delete(c.Request.Context(), key); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Stat not found")
			return
		}
		middleware.LoggerFromContext(c).Error("delete stat failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	Message(c, "Stat deleted successfully")
}
