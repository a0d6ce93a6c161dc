package api

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/repository"
)

const maxCVSize = 10 * 1024 * 1024

// CVHandler serves the CV endpoints: the public active CV, uploads and
// deletion.
type CVHandler struct {
	cv        *repository.CVRepo
	store     objectStore
	bucket    string
	clamdAddr string
}

// NewCVHandler constructs the handler.
func NewCVHandler(cv *repository.CVRepo, store objectStore, bucket, clamdAddr string) *CVHandler {
	return &CVHandler{cv: cv, store: store, bucket: bucket, clamdAddr: clamdAddr}
}

// Get returns the active CV row, or null when none exists.
func (h *CVHandler) Get(c *gin.Context) {
	row, err := h.cv.Active(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("get active cv failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	if row == nil {
		OK(c, nil)
		return
	}
	OK(c, row)
}

// Upload stores a new CV and makes it the only active one. All validation
// happens before the storage write; the deactivate-then-insert pair is two
// independent statements, so a crash in between can leave zero active rows.
func (h *CVHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "No file uploaded")
		return
	}

	if file.Header.Get("Content-Type") != "application/pdf" {
		BadRequest(c, "Only PDF files are allowed")
		return
	}
	if file.Size > maxCVSize {
		BadRequest(c, "File size exceeds 10MB limit")
		return
	}

	logger := middleware.LoggerFromContext(c)
	if err := scanUpload(h.clamdAddr, file); err != nil {
		logger.Info("cv upload rejected by scan", slog.Any("error", err))
		BadRequest(c, err.Error())
		return
	}

	reader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer reader.Close()

	ctx := c.Request.Context()
	fileName := fmt.Sprintf("cv-%d.pdf", time.Now().UnixMilli())
	url, err := h.store.Upload(ctx, h.bucket, fileName, reader, file.Size, "application/pdf")
	if err != nil {
		logger.Error("upload cv failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}

	if err := h.cv.DeactivateAll(ctx); err != nil {
		logger.Error("deactivate cvs failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}

	id, err := h.cv.Insert(ctx, fileName, url, file.Size)
	if err != nil {
		logger.Error("insert cv failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}

	OK(c, gin.H{
		"id":        id,
		"file_name": fileName,
		"file_path": url,
		"file_size": file.Size,
	})
}

// Delete removes the CV identified by ?id=, object first, then the row.
// The two deletes are not atomic; a missing object is not an error.
func (h *CVHandler) Delete(c *gin.Context) {
	rawID := c.Query("id")
	if rawID == "" {
		BadRequest(c, "CV ID required")
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "invalid id")
		return
	}

	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c)

	row, err := h.cv.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "CV not found")
			return
		}
		logger.Error("get cv failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}

	if filePath, ok := row["file_path"].(string); ok {
		if key := h.store.KeyFromURL(h.bucket, filePath); key != "" {
			if err := h.store.Delete(ctx, h.bucket, key); err != nil {
				// Best effort: the row still goes away.
				logger.Error("delete cv object failed", slog.Any("error", err))
			}
		}
	}

	if err := h.cv.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "CV not found")
			return
		}
		logger.Error("delete cv failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}
	Message(c, "CV deleted successfully")
}
