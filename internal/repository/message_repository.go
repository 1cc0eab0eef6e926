package repository

import (
	"context"
	"database/sql"

	"github.com/comite-ethique/backend/internal/model"
)

// MessageRepo persists messages addressed to the committee.
type MessageRepo struct{ DB *sql.DB }

func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{DB: db} }

func (r *MessageRepo) Insert(ctx context.Context, m *model.Message) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO messages (id,date,expediteur,destinataire,nature,sujet,message,urgent,status,created_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		m.ID, m.Date, m.Expediteur, m.Destinataire, m.Nature, m.Sujet,
		m.Message, m.Urgent, m.Status, m.CreatedAt)
	return err
}

func (r *MessageRepo) ListAll(ctx context.Context) ([]model.Message, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,date,expediteur,destinataire,nature,sujet,message,urgent,status,created_at
		 FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Date, &m.Expediteur, &m.Destinataire,
			&m.Nature, &m.Sujet, &m.Message, &m.Urgent, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// MarkRead flips a message to LU.  The transition is one-way; there is no
// way back to NON_LU.
func (r *MessageRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE messages SET status=? WHERE id=?", model.StatusLu, id)
	return err
}

func (r *MessageRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages").Scan(&n)
	return n, err
}
