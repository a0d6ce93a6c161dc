package repository

import (
	"context"
	"fmt"

	"portfolio/internal/database"
)

// CVRepo accesses the cv_files table.
type CVRepo struct {
	db *database.Adapter
}

// NewCVRepo returns a CVRepo backed by the adapter.
func NewCVRepo(db *database.Adapter) *CVRepo {
	return &CVRepo{db: db}
}

// Active returns the newest active CV row, or nil when none exists.
func (r *CVRepo) Active(ctx context.Context) (database.Row, error) {
	res, err := r.db.Query(ctx,
		"SELECT * FROM cv_files WHERE is_active = TRUE ORDER BY uploaded_at DESC LIMIT 1")
	if err != nil {
		return nil, fmt.Errorf("get active cv: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, nil
	}
	return res.Rows[0], nil
}

// Get returns a CV row by id. ErrNotFound when the id matches no row.
func (r *CVRepo) Get(ctx context.Context, id int64) (database.Row, error) {
	res, err := r.db.Query(ctx, "SELECT * FROM cv_files WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get cv: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, ErrNotFound
	}
	return res.Rows[0], nil
}

// DeactivateAll clears the active flag on every row. The upload path calls
// this before Insert; the two statements commit independently, so a crash
// in between can leave zero active CVs.
func (r *CVRepo) DeactivateAll(ctx context.Context) error {
	if _, err := r.db.Query(ctx, "UPDATE cv_files SET is_active = FALSE WHERE is_active = TRUE"); err != nil {
		return fmt.Errorf("deactivate cvs: %w", err)
	}
	return nil
}

// Insert stores a new CV row as active and returns the generated id.
func (r *CVRepo) Insert(ctx context.Context, fileName, filePath string, fileSize int64) (int64, error) {
	res, err := r.db.Query(ctx,
		"INSERT INTO cv_files (file_name, file_path, file_size, is_active) VALUES (?, ?, ?, TRUE)",
		fileName, filePath, fileSize,
	)
	if err != nil {
		return 0, fmt.Errorf("insert cv: %w", err)
	}
	return res.InsertID, nil
}

// Delete removes a CV row. ErrNotFound when the id matches no row.
func (r *CVRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Query(ctx, "DELETE FROM cv_files WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete cv: %w", err)
	}
	if res.AffectedRows == 0 {
		return ErrNotFound
	}
	return nil
}
