package repository

import (
	"context"
	"database/sql"

	"github.com/comite-ethique/backend/internal/model"
)

// ComplaintRepo persists complaints in the 'plaintes' table.
type ComplaintRepo struct{ DB *sql.DB }

func NewComplaintRepo(db *sql.DB) *ComplaintRepo { return &ComplaintRepo{DB: db} }

// Insert stores a new complaint.  ID, timestamps and defaults are set by
// the caller; status always starts at EN_ATTENTE.
func (r *ComplaintRepo) Insert(ctx context.Context, c *model.Complaint) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO plaintes (id,date,anonymous,plaignant,grade,personne,categorie,gravite,date_faits,description,demandes,status,created_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		c.ID, c.Date, c.Anonymous, c.Plaignant, c.Grade, c.Personne, c.Categorie,
		c.Gravite, c.DateFaits, c.Description, c.Demandes, c.Status, c.CreatedAt)
	return err
}

// ListAll returns every complaint, newest first.
func (r *ComplaintRepo) ListAll(ctx context.Context) ([]model.Complaint, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,date,anonymous,plaignant,grade,personne,categorie,gravite,date_faits,description,demandes,status,created_at
		 FROM plaintes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Complaint{}
	for rows.Next() {
		var c model.Complaint
		if err := rows.Scan(&c.ID, &c.Date, &c.Anonymous, &c.Plaignant, &c.Grade,
			&c.Personne, &c.Categorie, &c.Gravite, &c.DateFaits, &c.Description,
			&c.Demandes, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// UpdateStatus sets the lifecycle status.  Validation of the value happens
// in the handler; unknown ids are a silent no-op like in every other
// mutation here.
func (r *ComplaintRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE plaintes SET status=? WHERE id=?", status, id)
	return err
}

// Count returns the number of complaints.
func (r *ComplaintRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM plaintes").Scan(&n)
	return n, err
}
