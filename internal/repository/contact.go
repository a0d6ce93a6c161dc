package repository

import (
	"context"
	"fmt"

	"portfolio/internal/database"
)

// ContactRepo accesses the contact_info table.
type ContactRepo struct {
	db *database.Adapter
}

// NewContactRepo returns a ContactRepo backed by the adapter.
func NewContactRepo(db *database.Adapter) *ContactRepo {
	return &ContactRepo{db: db}
}

// Fields returns the full contact page as a flat name -> value map.
func (r *ContactRepo) Fields(ctx context.Context) (map[string]string, error) {
	res, err := r.db.Query(ctx, "SELECT * FROM contact_info")
	if err != nil {
		return nil, fmt.Errorf("list contact fields: %w", err)
	}

	fields := make(map[string]string, len(res.Rows))
	for _, row := range res.Rows {
		name, _ := row["field_name"].(string)
		value, _ := row["field_value"].(string)
		fields[name] = value
	}
	return fields, nil
}

// SetField upserts a single field. Callers iterate over a submitted map and
// call this per field; each statement commits on its own, so a failure
// mid-iteration leaves earlier fields written.
func (r *ContactRepo) SetField(ctx context.Context, name, value string) error {
	_, err := r.db.Query(ctx,
		`INSERT INTO contact_info (field_name, field_value) VALUES (?, ?)
		 ON CONFLICT (field_name) DO UPDATE SET field_value = EXCLUDED.field_value`,
		name, value,
	)
	if err != nil {
		return fmt.Errorf("set contact field %q: %w", name, err)
	}
	return nil
}
