package repository

import (
	"context"
	"fmt"

	"portfolio/internal/database"
)

// StatUpdate carries the fields of the bulk value/label update.
type StatUpdate struct {
	StatKey   string `json:"stat_key" binding:"required"`
	StatLabel string `json:"stat_label"`
	StatValue int    `json:"stat_value"`
}

// StatsRepo accesses the stats table.
type StatsRepo struct {
	db *database.Adapter
}

// NewStatsRepo returns a StatsRepo backed by the adapter.
func NewStatsRepo(db *database.Adapter) *StatsRepo {
	return &StatsRepo{db: db}
}

// List returns all stats ordered for display.
func (r *StatsRepo) List(ctx context.Context) ([]database.Row, error) {
	res, err := r.db.Query(ctx, "SELECT * FROM stats ORDER BY display_order ASC")
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	return res.Rows, nil
}

// Upsert inserts a stat or, when stat_key already exists, overwrites its
// value, label and display order in place.
func (r *StatsRepo) Upsert(ctx context.Context, key string, value int, label string, displayOrder int) error {
	_, err := r.db.Query(ctx,
		`INSERT INTO stats (stat_key, stat_value, stat_label, display_order) VALUES (?, ?, ?, ?)
		 ON CONFLICT (stat_key) DO UPDATE
		 SET stat_value = EXCLUDED.stat_value, stat_label = EXCLUDED.stat_label, display_order = EXCLUDED.display_order`,
		key, value, label, displayOrder,
	)
	if err != nil {
		return fmt.Errorf("upsert stat: %w", err)
	}
	return nil
}

// UpdateValues updates value and label for each existing stat matched by
// stat_key. Display order is left alone. Rows that match nothing are
// skipped silently, per the admin panel's bulk-save semantics.
func (r *StatsRepo) UpdateValues(ctx context.Context, updates []StatUpdate) error {
	for _, stat := range updates {
		_, err := r.db.Query(ctx,
			"UPDATE stats SET stat_value = ?, stat_label = ? WHERE stat_key = ?",
			stat.StatValue, stat.StatLabel, stat.StatKey,
		)
		if err != nil {
			return fmt.Errorf("update stat %q: %w", stat.StatKey, err)
		}
	}
	return nil
}

// Delete removes a stat by key. ErrNotFound when the key matches no row.
func (r *StatsRepo) Delete(ctx context.Context, key string) error {
	res, err := r.db.Query(ctx, "DELETE FROM stats WHERE stat_key = ?", key)
	if err != nil {
		return fmt.Errorf("delete stat: %w", err)
	}
	if res.AffectedRows == 0 {
		return ErrNotFound
	}
	return nil
}
