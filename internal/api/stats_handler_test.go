package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"portfolio/internal/repository"
)

func TestStatsUpsertThenList(t *testing.T) {
	h := NewStatsHandler(repository.NewStatsRepo(newHandlerTestDB(t)))

	c, w := newJSONContext(t, http.MethodPost, "/api/stats",
		`{"stat_key":"projects_completed","stat_label":"Projects completed","stat_value":12,"display_order":1}`)
	h.Upsert(c)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert: status %d body=%s", w.Code, w.Body.String())
	}

	// Same key again overwrites in place.
	c, w = newJSONContext(t, http.MethodPost, "/api/stats",
		`{"stat_key":"projects_completed","stat_label":"Projects shipped","stat_value":14,"display_order":1}`)
	h.Upsert(c)
	if w.Code != http.StatusOK {
		t.Fatalf("second upsert: status %d body=%s", w.Code, w.Body.String())
	}

	c, w = newJSONContext(t, http.MethodGet, "/api/stats", "")
	h.List(c)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("rows = %v, want 1", resp.Data)
	}
	if resp.Data[0]["stat_label"] != "Projects shipped" {
		t.Errorf("stat_label = %v", resp.Data[0]["stat_label"])
	}
}

func TestStatsUpsertValidation(t *testing.T) {
	h := NewStatsHandler(repository.NewStatsRepo(newHandlerTestDB(t)))

	c, w := newJSONContext(t, http.MethodPost, "/api/stats", `{"stat_value":5}`)
	h.Upsert(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestStatsBulkUpdate(t *testing.T) {
	repo := repository.NewStatsRepo(newHandlerTestDB(t))
	h := NewStatsHandler(repo)

	c, w := newJSONContext(t, http.MethodPost, "/api/stats",
		`{"stat_key":"years","stat_label":"Years","stat_value":3,"display_order":1}`)
	h.Upsert(c)
	if w.Code != http.StatusOK {
		t.Fatalf("seed: status %d", w.Code)
	}

	c, w = newJSONContext(t, http.MethodPut, "/api/stats",
		`{"stats":[{"stat_key":"years","stat_label":"Years of experience","stat_value":4}]}`)
	h.BulkUpdate(c)
	if w.Code != http.StatusOK {
		t.Fatalf("bulk update: status %d body=%s", w.Code, w.Body.String())
	}

	c, w = newJSONContext(t, http.MethodPut, "/api/stats", `{}`)
	h.BulkUpdate(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing stats array: status %d", w.Code)
	}
}

func TestStatsDelete(t *testing.T) {
	h := NewStatsHandler(repository.NewStatsRepo(newHandlerTestDB(t)))

	c, w := newJSONContext(t, http.MethodDelete, "/api/stats", "")
	h.Delete(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("no key: status %d", w.Code)
	}

	c, w = newJSONContext(t, http.MethodDelete, "/api/stats?key=ghost", "")
	h.Delete(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing key: status %d body=%s", w.Code, w.Body.String())
	}

	c, w = newJSONContext(t, http.MethodPost, "/api/stats",
		`{"stat_key":"gone","stat_label":"Gone","stat_value":1}`)
	h.Upsert(c)
	if w.Code != http.StatusOK {
		t.Fatalf("seed: status %d", w.Code)
	}
	c, w = newJSONContext(t, http.MethodDelete, "/api/stats?key=gone", "")
	h.Delete(c)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d body=%s", w.Code, w.Body.String())
	}
}
