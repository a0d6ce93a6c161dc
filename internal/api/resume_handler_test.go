package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio/internal/repository"
)

func newResumeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewResumeHandler(repository.NewResumeRepo(newHandlerTestDB(t)))

	router := gin.New()
	router.GET("/api/resume", h.List)
	router.POST("/api/resume", h.Create)
	router.PUT("/api/resume/:id", h.Update)
	router.DELETE("/api/resume/:id", h.Delete)
	return router
}

func TestResumeCreateAndGroupedList(t *testing.T) {
	router := newResumeRouter(t)

	w := doJSON(router, http.MethodPost, "/api/resume",
		`{"section":"experience","content":{"company":"Acme","role":"Engineer"},"order_index":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body=%s", w.Code, w.Body.String())
	}
	w = doJSON(router, http.MethodPost, "/api/resume",
		`{"section":"about","content":"I build web things"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodGet, "/api/resume", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var resp struct {
		Data map[string][]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data["experience"]) != 1 || len(resp.Data["about"]) != 1 {
		t.Fatalf("grouped = %v", resp.Data)
	}
	entry, ok := resp.Data["experience"][0].(map[string]any)
	if !ok || entry["company"] != "Acme" {
		t.Errorf("experience entry = %v", resp.Data["experience"][0])
	}
}

func TestResumeUpdateDeleteMissing(t *testing.T) {
	router := newResumeRouter(t)

	w := doJSON(router, http.MethodPut, "/api/resume/7",
		`{"section":"skills","content":["Go"]}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("update missing: status %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodDelete, "/api/resume/7", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing: status %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodPost, "/api/resume", `{"section":"skills"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing content: status %d", w.Code)
	}
}
