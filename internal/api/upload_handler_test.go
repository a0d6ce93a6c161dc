package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func uploadRequest(t *testing.T, h *UploadHandler, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	body, formContentType := newMultipartUpload(t, filename, contentType, content)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", formContentType)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	h.Upload(c)
	return w
}

func TestUploadRejectsNonImage(t *testing.T) {
	store := newFakeStore()
	h := NewUploadHandler(store, "projects", "")

	w := uploadRequest(t, h, "notes.txt", "text/plain", []byte("hello"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d body=%s", w.Code, w.Body.String())
	}
	if len(store.uploaded) != 0 {
		t.Errorf("rejected file reached storage: %v", store.uploaded)
	}
	if !strings.Contains(w.Body.String(), "Only images are allowed") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	store := newFakeStore()
	h := NewUploadHandler(store, "projects", "")

	big := bytes.Repeat([]byte("x"), maxImageSize+1)
	w := uploadRequest(t, h, "big.png", "image/png", big)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d body=%s", w.Code, w.Body.String())
	}
	if len(store.uploaded) != 0 {
		t.Errorf("oversized file reached storage: %v", store.uploaded)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUploadHandler(newFakeStore(), "projects", "")

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	h.Upload(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d body=%s", w.Code, w.Body.String())
	}
}

func TestUploadStoresImageAndReturnsURL(t *testing.T) {
	store := newFakeStore()
	h := NewUploadHandler(store, "projects", "")

	w := uploadRequest(t, h, "my screenshot.png", "image/png", []byte("\x89PNG\r\n\x1a\n"))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body=%s", w.Code, w.Body.String())
	}
	if len(store.uploaded) != 1 {
		t.Fatalf("uploads = %v, want exactly one", store.uploaded)
	}
	for key := range store.uploaded {
		// Whitespace in the original name is replaced in the object key.
		if strings.Contains(key, " ") {
			t.Errorf("object key %q still contains whitespace", key)
		}
		if !strings.HasSuffix(key, "-my-screenshot.png") {
			t.Errorf("object key %q missing sanitized name suffix", key)
		}
	}

	var resp struct {
		Success bool `json:"success"`
		URL     string `json:"url"`
		Data    struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.URL == "" || resp.URL != resp.Data.URL {
		t.Errorf("response = %s, want the URL mirrored at both levels", w.Body.String())
	}
}
