package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"portfolio/internal/database"
)

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Title       string
	Description string
	Category    string
	Image       *string
	Stack       []string
	LiveURL     *string
	GithubURL   *string
}

// ProjectRepo accesses the projects table.
type ProjectRepo struct {
	db *database.Adapter
}

// NewProjectRepo returns a ProjectRepo backed by the adapter.
func NewProjectRepo(db *database.Adapter) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// List returns all projects newest-first, optionally filtered by category.
// An empty category or the literal "all projects" disables the filter.
// The stack column is parsed into a string slice on every row.
func (r *ProjectRepo) List(ctx context.Context, category string) ([]database.Row, error) {
	var (
		res *database.Result
		err error
	)
	if category == "" || strings.EqualFold(category, "all projects") {
		res, err = r.db.Query(ctx, "SELECT * FROM projects ORDER BY created_at DESC")
	} else {
		res, err = r.db.Query(ctx, "SELECT * FROM projects WHERE category = ? ORDER BY created_at DESC", category)
	}
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	for _, row := range res.Rows {
		row["stack"] = ParseStack(row["stack"])
	}
	return res.Rows, nil
}

// Get returns a single project by id with its stack parsed.
func (r *ProjectRepo) Get(ctx context.Context, id int64) (database.Row, error) {
	res, err := r.db.Query(ctx, "SELECT * FROM projects WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, ErrNotFound
	}
	row := res.Rows[0]
	row["stack"] = ParseStack(row["stack"])
	return row, nil
}

// Create inserts a project and returns the generated id.
// The stack slice is stored as JSON array text.
func (r *ProjectRepo) Create(ctx context.Context, in ProjectInput) (int64, error) {
	stackJSON, err := json.Marshal(stackOrEmpty(in.Stack))
	if err != nil {
		return 0, fmt.Errorf("marshal stack: %w", err)
	}

	res, err := r.db.Query(ctx,
		`INSERT INTO projects (title, description, category, image, stack, live_url, github_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.Description, in.Category, in.Image, string(stackJSON), in.LiveURL, in.GithubURL,
	)
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}
	return res.InsertID, nil
}

// Update rewrites all writable fields of a project. ErrNotFound when the id
// matches no row.
func (r *ProjectRepo) Update(ctx context.Context, id int64, in ProjectInput) error {
	stackJSON, err := json.Marshal(stackOrEmpty(in.Stack))
	if err != nil {
		return fmt.Errorf("marshal stack: %w", err)
	}

	res, err := r.db.Query(ctx,
		`UPDATE projects
		 SET title = ?, description = ?, category = ?, image = ?, stack = ?, live_url = ?, github_url = ?
		 WHERE id = ?`,
		in.Title, in.Description, in.Category, in.Image, string(stackJSON), in.LiveURL, in.GithubURL, id,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.AffectedRows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a project. ErrNotFound when the id matches no row.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Query(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.AffectedRows == 0 {
		return ErrNotFound
	}
	return nil
}

func stackOrEmpty(stack []string) []string {
	if stack == nil {
		return []string{}
	}
	return stack
}

// ParseStack tolerates the three stack shapes that exist on disk: JSON
// array text, Postgres array-literal text like {a,b,c} left behind by an
// earlier migration, and a bare scalar, which wraps into a one-element
// slice. Anything unreadable degrades to an empty slice.
func ParseStack(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return []string{}
		}

		var parsed []string
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			return parsed
		}

		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			inner := strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
			if inner == "" {
				return []string{}
			}
			parts := strings.Split(inner, ",")
			out := make([]string, 0, len(parts))
			for _, part := range parts {
				part = strings.TrimSpace(part)
				part = strings.TrimSuffix(strings.TrimPrefix(part, `"`), `"`)
				if part != "" {
					out = append(out, part)
				}
			}
			return out
		}

		return []string{s}
	default:
		return []string{}
	}
}
