package repository

import (
	"context"
	"database/sql"

	"github.com/comite-ethique/backend/internal/model"
)

// SuggestionRepo persists improvement suggestions.
type SuggestionRepo struct{ DB *sql.DB }

func NewSuggestionRepo(db *sql.DB) *SuggestionRepo { return &SuggestionRepo{DB: db} }

func (r *SuggestionRepo) Insert(ctx context.Context, s *model.Suggestion) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO suggestions (id,date,anonymous,auteur,domaine,titre,description,priorite,status,created_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		s.ID, s.Date, s.Anonymous, s.Auteur, s.Domaine, s.Titre,
		s.Description, s.Priorite, s.Status, s.CreatedAt)
	return err
}

func (r *SuggestionRepo) ListAll(ctx context.Context) ([]model.Suggestion, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,date,anonymous,auteur,domaine,titre,description,priorite,status,created_at
		 FROM suggestions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Suggestion{}
	for rows.Next() {
		var s model.Suggestion
		if err := rows.Scan(&s.ID, &s.Date, &s.Anonymous, &s.Auteur, &s.Domaine,
			&s.Titre, &s.Description, &s.Priorite, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// MarkRead flips a suggestion to LU, one-way.
func (r *SuggestionRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE suggestions SET status=? WHERE id=?", model.StatusLu, id)
	return err
}

func (r *SuggestionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM suggestions").Scan(&n)
	return n, err
}
