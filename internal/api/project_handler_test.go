package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio/internal/repository"
)

func newProjectRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewProjectHandler(repository.NewProjectRepo(newHandlerTestDB(t)))

	router := gin.New()
	router.GET("/api/projects", h.List)
	router.GET("/api/projects/:id", h.Get)
	router.POST("/api/projects", h.Create)
	router.PUT("/api/projects/:id", h.Update)
	router.DELETE("/api/projects/:id", h.Delete)
	return router
}

func doJSON(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProjectLifecycle(t *testing.T) {
	router := newProjectRouter(t)

	w := doJSON(router, http.MethodPost, "/api/projects",
		`{"title":"Site","description":"A portfolio","category":"fullstack","stack":["Go","Postgres"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d body=%s", w.Code, w.Body.String())
	}
	var created struct {
		Data struct {
			ID    int64    `json:"id"`
			Stack []string `json:"stack"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Data.ID == 0 || len(created.Data.Stack) != 2 {
		t.Fatalf("create response = %s", w.Body.String())
	}

	w = doJSON(router, http.MethodGet, "/api/projects?category=fullstack", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var listed struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed.Data) != 1 {
		t.Fatalf("list = %v", listed.Data)
	}
	if stack, ok := listed.Data[0]["stack"].([]any); !ok || len(stack) != 2 {
		t.Errorf("stack = %v, want parsed slice", listed.Data[0]["stack"])
	}

	id := created.Data.ID
	w = doJSON(router, http.MethodPut, "/api/projects/"+itoa(id),
		`{"title":"Site v2","description":"A portfolio","category":"frontend"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodGet, "/api/projects/"+itoa(id), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Site v2") {
		t.Errorf("get body = %s", w.Body.String())
	}

	w = doJSON(router, http.MethodDelete, "/api/projects/"+itoa(id), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d body=%s", w.Code, w.Body.String())
	}
	w = doJSON(router, http.MethodGet, "/api/projects/"+itoa(id), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status %d", w.Code)
	}
}

func TestProjectValidation(t *testing.T) {
	router := newProjectRouter(t)

	w := doJSON(router, http.MethodPost, "/api/projects", `{"title":"no category"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing fields: status %d", w.Code)
	}

	w = doJSON(router, http.MethodGet, "/api/projects/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status %d", w.Code)
	}

	w = doJSON(router, http.MethodDelete, "/api/projects/424242", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing project: status %d", w.Code)
	}
}
