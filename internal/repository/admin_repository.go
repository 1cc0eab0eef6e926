package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/comite-ethique/backend/internal/model"
	"github.com/comite-ethique/backend/internal/utils"
)

// AdminRepo persists staff accounts in the 'admins' table.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// Create hashes the password and inserts an account, returning its ID.
func (r *AdminRepo) Create(ctx context.Context, username, password, name string, cost int) (int64, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins (username, password, name) VALUES (?,?,?)",
		username, hash, name)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return res.LastInsertId()
}

// GetByUsername fetches a full account row, hash included, for login.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (model.Admin, error) {
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password,name,created_at FROM admins WHERE username=? LIMIT 1",
		strings.TrimSpace(username)).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Name, &a.CreatedAt)
	return a, err
}

// List returns all accounts without their password hashes.
func (r *AdminRepo) List(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,username,name,created_at FROM admins ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Admin{}
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Username, &a.Name, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// Count returns the number of accounts.  The delete handler uses it to
// protect the last remaining account.
func (r *AdminRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM admins").Scan(&n)
	return n, err
}

// Delete removes an account by id.
func (r *AdminRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM admins WHERE id=?", id)
	return err
}
