// Package repository holds the per-entity data access for the portfolio
// site. Every statement is written with `?` placeholders and routed through
// the database adapter, which rewrites them for PostgreSQL and normalizes
// the result shape.
package repository

import "errors"

// ErrNotFound reports that an update or delete matched zero rows.
var ErrNotFound = errors.New("not found")
