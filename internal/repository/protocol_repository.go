package repository

import (
	"context"
	"database/sql"

	"github.com/comite-ethique/backend/internal/model"
)

// ProtocolRepo persists published procedural documents.
type ProtocolRepo struct{ DB *sql.DB }

func NewProtocolRepo(db *sql.DB) *ProtocolRepo { return &ProtocolRepo{DB: db} }

// Upsert inserts a protocol or replaces an existing one with the same id in
// full.  Replacement is destructive; no prior version is retained.
func (r *ProtocolRepo) Upsert(ctx context.Context, p *model.Protocol) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT OR REPLACE INTO protocols (id,title,category,version,date,content)
		 VALUES (?,?,?,?,?,?)`,
		p.ID, p.Title, p.Category, p.Version, p.Date, p.Content)
	return err
}

// Delete removes a protocol by id; deleting an absent id is a no-op.
func (r *ProtocolRepo) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM protocols WHERE id=?", id)
	return err
}

// Search returns protocols matching an optional free-text filter (substring
// of title or id, case-insensitive) and an optional exact category, ordered
// by date descending.  Empty filters return everything.
func (r *ProtocolRepo) Search(ctx context.Context, q, cat string) ([]model.Protocol, error) {
	sqlStr := "SELECT id,title,category,version,date,content,created_at FROM protocols WHERE 1=1"
	args := []any{}
	if q != "" {
		sqlStr += " AND (title LIKE ? OR id LIKE ?)"
		pat := "%" + q + "%"
		args = append(args, pat, pat)
	}
	if cat != "" {
		sqlStr += " AND category = ?"
		args = append(args, cat)
	}
	sqlStr += " ORDER BY date DESC"

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Protocol{}
	for rows.Next() {
		var p model.Protocol
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Version,
			&p.Date, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// GetByID fetches a single protocol.
func (r *ProtocolRepo) GetByID(ctx context.Context, id string) (model.Protocol, error) {
	var p model.Protocol
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,title,category,version,date,content,created_at FROM protocols WHERE id=? LIMIT 1",
		id).Scan(&p.ID, &p.Title, &p.Category, &p.Version, &p.Date, &p.Content, &p.CreatedAt)
	return p, err
}

func (r *ProtocolRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM protocols").Scan(&n)
	return n, err
}
