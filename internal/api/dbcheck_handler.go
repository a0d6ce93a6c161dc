package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/database"
)

// DBCheckHandler serves the /api/db-check diagnostic endpoint.
type DBCheckHandler struct {
	db *database.Adapter
}

// NewDBCheckHandler constructs the handler.
func NewDBCheckHandler(db *database.Adapter) *DBCheckHandler {
	return &DBCheckHandler{db: db}
}

// Check reports server version, current database, public table count and,
// when the table exists, the project count.
func (h *DBCheckHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	verRes, err := h.db.Query(ctx, "select version()")
	if err != nil {
		Internal(c, err.Error())
		return
	}
	dbRes, err := h.db.Query(ctx, "select current_database() as name")
	if err != nil {
		Internal(c, err.Error())
		return
	}
	tabRes, err := h.db.Query(ctx,
		"select count(*)::int as count from information_schema.tables where table_schema = ?", "public")
	if err != nil {
		Internal(c, err.Error())
		return
	}

	// The projects table may not exist yet on a fresh database.
	var projectCount any
	if prjRes, err := h.db.Query(ctx, "select count(*)::int as count from projects"); err == nil && len(prjRes.Rows) > 0 {
		projectCount = prjRes.Rows[0]["count"]
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"version":      firstColumn(verRes, "version"),
		"database":     firstColumn(dbRes, "name"),
		"publicTables": firstColumn(tabRes, "count"),
		"projectCount": projectCount,
	})
}

func firstColumn(res *database.Result, column string) any {
	if len(res.Rows) == 0 {
		return nil
	}
	return res.Rows[0][column]
}
