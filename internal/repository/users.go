package repository

import (
	"context"
	"fmt"

	"portfolio/internal/database"
)

// AdminAccount is the panel account read back for a login attempt.
type AdminAccount struct {
	ID       int64
	Username string
	Password string
	Email    string
}

// UserRepo accesses the admin_users table. The table is seeded at bootstrap
// and read-only from the application's perspective.
type UserRepo struct {
	db *database.Adapter
}

// NewUserRepo returns a UserRepo backed by the adapter.
func NewUserRepo(db *database.Adapter) *UserRepo {
	return &UserRepo{db: db}
}

// ByUsername returns the account with the given username.
// ErrNotFound when no such account exists.
func (r *UserRepo) ByUsername(ctx context.Context, username string) (*AdminAccount, error) {
	res, err := r.db.Query(ctx, "SELECT * FROM admin_users WHERE username = ?", username)
	if err != nil {
		return nil, fmt.Errorf("get admin user: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, ErrNotFound
	}

	row := res.Rows[0]
	account := &AdminAccount{}
	switch id := row["id"].(type) {
	case int64:
		account.ID = id
	case int:
		account.ID = int64(id)
	}
	account.Username, _ = row["username"].(string)
	account.Password, _ = row["password"].(string)
	account.Email, _ = row["email"].(string)
	return account, nil
}
