package repository

import (
	"context"
	"errors"
	"testing"
)

func TestStatsRepoUpsertKeepsSingleRow(t *testing.T) {
	repo := NewStatsRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, "projects_completed", 10, "Projects completed", 1); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, "projects_completed", 12, "Projects shipped", 2); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row after conflicting upserts, got %d", len(rows))
	}
	if rows[0]["stat_label"] != "Projects shipped" {
		t.Errorf("stat_label = %v, want overwritten value", rows[0]["stat_label"])
	}
}

func TestStatsRepoListOrdersByDisplayOrder(t *testing.T) {
	repo := NewStatsRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, "second", 2, "Second", 20); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, "first", 1, "First", 10); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 || rows[0]["stat_key"] != "first" {
		t.Fatalf("list order = %v, want display_order ascending", rows)
	}
}

func TestStatsRepoUpdateValues(t *testing.T) {
	repo := NewStatsRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.Upsert(ctx, "years", 3, "Years of experience", 5); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	err := repo.UpdateValues(ctx, []StatUpdate{
		{StatKey: "years", StatValue: 4, StatLabel: "Years"},
		{StatKey: "unknown", StatValue: 1, StatLabel: "Silently skipped"},
	})
	if err != nil {
		t.Fatalf("update values: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("unknown key must not create a row, got %d rows", len(rows))
	}
	row := rows[0]
	if row["stat_label"] != "Years" {
		t.Errorf("stat_label = %v, want updated", row["stat_label"])
	}
	if order := row["display_order"]; order != int64(5) && order != 5 {
		t.Errorf("display_order = %v (%T), must stay untouched", order, order)
	}
}

func TestStatsRepoDeleteMissing(t *testing.T) {
	repo := NewStatsRepo(newTestDB(t))

	if err := repo.Delete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing: %v, want ErrNotFound", err)
	}
}
