package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/storage"
)

// objectStore is the slice of the storage client the upload paths need.
type objectStore interface {
	Upload(ctx context.Context, bucket, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, bucket, objectKey string) error
	KeyFromURL(bucket, publicURL string) string
}

const maxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadHandler serves the generic image upload used by the admin panel.
type UploadHandler struct {
	store     objectStore
	bucket    string
	clamdAddr string
}

// NewUploadHandler constructs the handler. An empty clamdAddr disables the
// virus scan.
func NewUploadHandler(store objectStore, bucket, clamdAddr string) *UploadHandler {
	return &UploadHandler{store: store, bucket: bucket, clamdAddr: clamdAddr}
}

// Upload validates and stores one image, returning its public URL.
// Validation happens before any storage write.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "No file provided")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		BadRequest(c, "Invalid file type. Only images are allowed.")
		return
	}
	if file.Size > maxImageSize {
		BadRequest(c, "File size exceeds 5MB limit")
		return
	}

	logger := middleware.LoggerFromContext(c)
	if err := scanUpload(h.clamdAddr, file); err != nil {
		logger.Info("upload rejected by scan", slog.Any("error", err))
		BadRequest(c, err.Error())
		return
	}

	reader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer reader.Close()

	objectKey := storage.ObjectKey(file.Filename)
	url, err := h.store.Upload(c.Request.Context(), h.bucket, objectKey, reader, file.Size, contentType)
	if err != nil {
		logger.Error("upload image failed", slog.Any("error", err))
		Internal(c, err.Error())
		return
	}

	// `url` is duplicated at the top level for older admin panel builds.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"url": url},
		"url":     url,
	})
}

// scanUpload streams the file through clamd when an address is configured.
// A detected signature comes back as an error; an empty address skips the
// scan entirely.
func scanUpload(clamdAddr string, file *multipart.FileHeader) error {
	if clamdAddr == "" {
		return nil
	}

	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer reader.Close()

	abortChan := make(chan bool)
	defer close(abortChan)

	scanChan, err := clamd.NewClamd(clamdAddr).ScanStream(reader, abortChan)
	if err != nil {
		return fmt.Errorf("scan file: %w", err)
	}
	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return fmt.Errorf("malicious file detected")
		}
	}
	return nil
}
