package repository

import (
	"context"
	"errors"
	"testing"
)

func TestResumeRepoGroupedBySection(t *testing.T) {
	adapter := newTestDB(t)
	repo := NewResumeRepo(adapter)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "experience",
		map[string]any{"company": "Acme", "role": "Engineer"}, 1); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "experience",
		map[string]any{"company": "Initech", "role": "Architect"}, 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "about", "I build web things", 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Legacy rows hold raw non-JSON text; those come back as plain strings.
	if _, err := adapter.Query(ctx,
		"INSERT INTO resume_data (section, content, order_index) VALUES (?, ?, ?)",
		"legacy", "plain prose, not JSON", 0); err != nil {
		t.Fatalf("seed legacy row: %v", err)
	}

	grouped, err := repo.GroupedBySection(ctx)
	if err != nil {
		t.Fatalf("grouped: %v", err)
	}
	if len(grouped) != 3 {
		t.Fatalf("grouped sections = %v, want 3", grouped)
	}

	exp := grouped["experience"]
	if len(exp) != 2 {
		t.Fatalf("experience entries = %v, want 2", exp)
	}
	first, ok := exp[0].(map[string]any)
	if !ok {
		t.Fatalf("entry type = %T, want decoded object", exp[0])
	}
	if first["company"] != "Initech" {
		t.Errorf("first entry company = %v, want order_index ascending", first["company"])
	}

	if got := grouped["about"][0]; got != "I build web things" {
		t.Errorf("about = %v (%T), want decoded string", got, got)
	}
	if got := grouped["legacy"][0]; got != "plain prose, not JSON" {
		t.Errorf("legacy = %v, want raw string passthrough", got)
	}
}

func TestResumeRepoUpdateDelete(t *testing.T) {
	repo := NewResumeRepo(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, "education", map[string]any{"school": "MIT"}, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Update(ctx, id, "education", map[string]any{"school": "Stanford"}, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.Update(ctx, id+1, "education", "x", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing: %v, want ErrNotFound", err)
	}
}

func TestUserRepoByUsername(t *testing.T) {
	adapter := newTestDB(t)
	repo := NewUserRepo(adapter)
	ctx := context.Background()

	if _, err := adapter.Query(ctx,
		"INSERT INTO admin_users (username, password, email) VALUES (?, ?, ?)",
		"admin", "$2a$10$hash", "admin@example.com"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	account, err := repo.ByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	if account.ID == 0 || account.Username != "admin" || account.Email != "admin@example.com" {
		t.Errorf("account = %+v", account)
	}

	if _, err := repo.ByUsername(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing user: %v, want ErrNotFound", err)
	}
}
