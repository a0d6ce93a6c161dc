package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio/internal/database"
)

// ResumeRepo accesses the resume_data table.
type ResumeRepo struct {
	db *database.Adapter
}

// NewResumeRepo returns a ResumeRepo backed by the adapter.
func NewResumeRepo(db *database.Adapter) *ResumeRepo {
	return &ResumeRepo{db: db}
}

// GroupedBySection returns every entry grouped by section, sorted by
// section then order_index. Content that parses as JSON is returned
// structured; anything else stays a raw string.
func (r *ResumeRepo) GroupedBySection(ctx context.Context) (map[string][]any, error) {
	res, err := r.db.Query(ctx,
		"SELECT id, section, content, order_index FROM resume_data ORDER BY section ASC, order_index ASC")
	if err != nil {
		return nil, fmt.Errorf("list resume entries: %w", err)
	}

	grouped := make(map[string][]any)
	for _, row := range res.Rows {
		section, _ := row["section"].(string)
		content, _ := row["content"].(string)

		var parsed any = content
		var decoded any
		if err := json.Unmarshal([]byte(content), &decoded); err == nil {
			parsed = decoded
		}

		grouped[section] = append(grouped[section], parsed)
	}
	return grouped, nil
}

// Create inserts an entry and returns the generated id. Content is stored
// as JSON text so structured payloads round-trip.
func (r *ResumeRepo) Create(ctx context.Context, section string, content any, orderIndex int) (int64, error) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return 0, fmt.Errorf("marshal content: %w", err)
	}

	res, err := r.db.Query(ctx,
		"INSERT INTO resume_data (section, content, order_index) VALUES (?, ?, ?)",
		section, string(contentJSON), orderIndex,
	)
	if err != nil {
		return 0, fmt.Errorf("create resume entry: %w", err)
	}
	return res.InsertID, nil
}

// Update rewrites an entry. ErrNotFound when the id matches no row.
func (r *ResumeRepo) Update(ctx context.Context, id int64, section string, content any, orderIndex int) error {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}

	res, err := r.db.Query(ctx,
		"UPDATE resume_data SET section = ?, content = ?, order_index = ? WHERE id = ?",
		section, string(contentJSON), orderIndex, id,
	)
	if err != nil {
		return fmt.Errorf("update resume entry: %w", err)
	}
	if res.AffectedRows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an entry. ErrNotFound when the id matches no row.
func (r *ResumeRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Query(ctx, "DELETE FROM resume_data WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete resume entry: %w", err)
	}
	if res.AffectedRows == 0 {
		return ErrNotFound
	}
	return nil
}
