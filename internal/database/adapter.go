package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Adapter runs raw statements written with MySQL-style `?` placeholders
// against PostgreSQL, rewriting them to `$n` markers and normalizing the
// result shape per statement kind. Call sites stay dialect-agnostic; the
// repositories were ported from a MySQL schema and keep the `?` style.
type Adapter struct {
	db *sql.DB
}

// NewAdapter unwraps the *sql.DB behind a GORM instance.
func NewAdapter(db *gorm.DB) (*Adapter, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap db: %w", err)
	}
	return &Adapter{db: sqlDB}, nil
}

// StatementKind tags the normalized result variant.
type StatementKind int

const (
	// KindRows carries the full row set (SELECT, WITH, and anything unclassified).
	KindRows StatementKind = iota
	// KindInsert carries the generated primary key.
	KindInsert
	// KindMutation carries the affected-row count (UPDATE, DELETE).
	KindMutation
)

// Row is one result row keyed by column name. []byte values are
// converted to string so rows serialize cleanly to JSON.
type Row map[string]any

// Result is the normalized outcome of a statement. Only the fields of the
// active Kind are meaningful.
type Result struct {
	Kind         StatementKind
	Rows         []Row
	InsertID     int64
	AffectedRows int64
	RowCount     int64
}

var returningClause = regexp.MustCompile(`(?i)RETURNING\s+\w+`)

// ConvertPlaceholders replaces each `?` with `$n`, numbered by occurrence
// order starting at 1. It is a plain character substitution; statements
// that mix literal question marks with an empty parameter list must not be
// passed through it (Query skips the rewrite when params is empty).
func ConvertPlaceholders(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	n := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

// Query executes one statement and normalizes its result.
//
// The first whitespace-delimited token of the trimmed statement decides the
// shape: SELECT/WITH return rows, INSERT returns the generated id (a
// `RETURNING id` clause is appended when the statement has none), UPDATE and
// DELETE return the affected-row count, and anything else returns whatever
// rows came back. Parameter values pass through unchanged and in order.
// Execution errors propagate without retry.
func (a *Adapter) Query(ctx context.Context, text string, params ...any) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	command := ""
	if fields := strings.Fields(trimmed); len(fields) > 0 {
		command = strings.ToUpper(fields[0])
	}

	stmt := trimmed
	if len(params) > 0 {
		stmt = ConvertPlaceholders(stmt)
	}

	switch command {
	case "INSERT":
		if !returningClause.MatchString(stmt) {
			stmt += " RETURNING id"
		}
		rows, err := a.queryRows(ctx, stmt, params)
		if err != nil {
			return nil, err
		}
		res := &Result{Kind: KindInsert, RowCount: int64(len(rows))}
		if len(rows) > 0 {
			res.InsertID = toInt64(rows[0]["id"])
		}
		return res, nil

	case "UPDATE", "DELETE":
		execResult, err := a.db.ExecContext(ctx, stmt, params...)
		if err != nil {
			return nil, fmt.Errorf("exec %q: %w", command, err)
		}
		affected, err := execResult.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("rows affected: %w", err)
		}
		return &Result{Kind: KindMutation, AffectedRows: affected, RowCount: affected}, nil

	default:
		// SELECT, WITH, and everything unclassified.
		rows, err := a.queryRows(ctx, stmt, params)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: KindRows, Rows: rows, RowCount: int64(len(rows))}, nil
	}
}

func (a *Adapter) queryRows(ctx context.Context, stmt string, params []any) ([]Row, error) {
	rows, err := a.db.QueryContext(ctx, stmt, params...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	out := make([]Row, 0, 8)
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			if b, ok := values[i].([]byte); ok {
				row[name] = string(b)
				continue
			}
			row[name] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

func toInt64(v any) int64 {
	switch value := v.(type) {
	case int64:
		return value
	case int:
		return int64(value)
	case int32:
		return int64(value)
	case uint:
		return int64(value)
	case uint64:
		return int64(value)
	case float64:
		return int64(value)
	case string:
		parsed, _ := strconv.ParseInt(value, 10, 64)
		return parsed
	default:
		return 0
	}
}
