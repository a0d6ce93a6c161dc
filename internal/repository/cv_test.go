package repository

import (
	"context"
	"errors"
	"testing"
)

func TestCVRepoActiveEmpty(t *testing.T) {
	repo := NewCVRepo(newTestDB(t))

	row, err := repo.Active(context.Background())
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if row != nil {
		t.Errorf("active = %v, want nil when no CV exists", row)
	}
}

func TestCVRepoSingleActiveAfterReplace(t *testing.T) {
	repo := NewCVRepo(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Insert(ctx, "cv-1.pdf", "http://files/cv/cv-1.pdf", 1000); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// The upload path deactivates everything before inserting the
	// replacement; afterwards only the new row is active.
	if err := repo.DeactivateAll(ctx); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	id2, err := repo.Insert(ctx, "cv-2.pdf", "http://files/cv/cv-2.pdf", 2000)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	row, err := repo.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if row == nil {
		t.Fatal("expected an active CV")
	}
	if row["file_name"] != "cv-2.pdf" {
		t.Errorf("active file_name = %v, want cv-2.pdf", row["file_name"])
	}

	got, err := repo.Get(ctx, id2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["file_path"] != "http://files/cv/cv-2.pdf" {
		t.Errorf("file_path = %v", got["file_path"])
	}
}

func TestCVRepoDelete(t *testing.T) {
	repo := NewCVRepo(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Insert(ctx, "cv.pdf", "http://files/cv/cv.pdf", 500)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete: %v, want ErrNotFound", err)
	}
}
