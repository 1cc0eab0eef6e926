package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/comite-ethique/backend/internal/model"
)

// SessionRepo persists server-side login sessions keyed by the SHA-256 hash
// of the opaque cookie token.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Create inserts a session row carrying the admin identity snapshot.
func (r *SessionRepo) Create(ctx context.Context, tokenHash string, admin model.AdminIdentity, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO sessions (token_hash, admin_id, admin_username, admin_name, expires_at)
		 VALUES (?,?,?,?,?)`,
		tokenHash, admin.ID, admin.Username, admin.Name, exp.UTC())
	return err
}

// GetByTokenHash returns the identity bound to a live session.  Expired
// rows behave exactly like missing ones.
func (r *SessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (model.AdminIdentity, error) {
	var (
		admin     model.AdminIdentity
		expiresAt time.Time
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT admin_id, admin_username, admin_name, expires_at FROM sessions WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&admin.ID, &admin.Username, &admin.Name, &expiresAt)
	if err != nil {
		return model.AdminIdentity{}, err
	}
	if time.Now().UTC().After(expiresAt) {
		return model.AdminIdentity{}, sql.ErrNoRows
	}
	return admin, nil
}

// DeleteByTokenHash destroys a single session (logout, or the regeneration
// step during login).
func (r *SessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM sessions WHERE token_hash=?", tokenHash)
	return err
}

// DeleteExpired purges rows past their expiry.  Called opportunistically on
// login so the table does not accumulate dead sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < ?", time.Now().UTC())
	return err
}
