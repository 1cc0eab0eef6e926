package repository

import (
	"context"
	"database/sql"
)

// ContentRepo persists the open-ended key/value site content.
type ContentRepo struct{ DB *sql.DB }

func NewContentRepo(db *sql.DB) *ContentRepo { return &ContentRepo{DB: db} }

// All returns the full key -> value mapping.
func (r *ContentRepo) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT key, value FROM site_content")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	content := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		content[k] = v
	}
	return content, rows.Err()
}

// Upsert sets a content key.  An empty value is allowed; it clears the text
// without removing the key.
func (r *ContentRepo) Upsert(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT OR REPLACE INTO site_content (key, value) VALUES (?,?)", key, value)
	return err
}
