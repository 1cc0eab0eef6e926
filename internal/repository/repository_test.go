package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/comite-ethique/backend/internal/database"
	"github.com/comite-ethique/backend/internal/model"
	"github.com/comite-ethique/backend/internal/repository"
)

// newTestDB opens an in-memory database with the full schema and seed data
// (one admin, five protocols, the description key).
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Bootstrap(context.Background(), db, bcrypt.MinCost))
	return db
}

func TestBootstrap_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	admins := repository.NewAdminRepo(db)
	protocols := repository.NewProtocolRepo(db)

	// Running bootstrap again must not duplicate or overwrite seeds.
	require.NoError(t, database.Bootstrap(ctx, db, bcrypt.MinCost))

	n, err := admins.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, err := protocols.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, p)
}

func TestAdminRepo_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admins := repository.NewAdminRepo(db)

	_, err := admins.Create(ctx, "greffier", "password123", "Greffier", bcrypt.MinCost)
	require.NoError(t, err)
	_, err = admins.Create(ctx, "greffier", "password456", "Autre", bcrypt.MinCost)
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestAdminRepo_ListOmitsPasswordHash(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admins := repository.NewAdminRepo(db)

	items, err := admins.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, database.DefaultAdminUsername, items[0].Username)
	assert.Empty(t, items[0].PasswordHash)
	assert.NotEmpty(t, items[0].CreatedAt)
}

func TestProtocolRepo_SearchFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	protocols := repository.NewProtocolRepo(db)

	all, err := protocols.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// Case-insensitive substring match on the title.
	byTitle, err := protocols.Search(ctx, "plaintes", "")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "CE-2026-02", byTitle[0].ID)

	// Substring match on the id.
	byID, err := protocols.Search(ctx, "2025", "")
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "CE-2025-08", byID[0].ID)

	// Exact category filter.
	byCat, err := protocols.Search(ctx, "", "ÉTHIQUE")
	require.NoError(t, err)
	assert.Len(t, byCat, 2)

	// Results are ordered by date descending.
	dates := make([]string, 0, len(all))
	for _, p := range all {
		dates = append(dates, p.Date)
	}
	assert.IsDecreasing(t, dates)
}

func TestProtocolRepo_UpsertReplaces(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	protocols := repository.NewProtocolRepo(db)

	require.NoError(t, protocols.Upsert(ctx, &model.Protocol{
		ID: "CE-2026-01", Title: "Nouveau titre", Category: "PROCÉDURE",
		Version: "v4.0", Date: "2026-03-01", Content: "Texte remplacé.",
	}))

	p, err := protocols.GetByID(ctx, "CE-2026-01")
	require.NoError(t, err)
	assert.Equal(t, "Nouveau titre", p.Title)
	assert.Equal(t, "PROCÉDURE", p.Category)
	assert.Equal(t, "v4.0", p.Version)
	assert.Equal(t, "Texte remplacé.", p.Content)

	n, err := protocols.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n, "replacement must not add a row")
}

func TestSessionRepo_Expiry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	sessions := repository.NewSessionRepo(db)
	admin := model.AdminIdentity{ID: 1, Username: "admin", Name: "Administrateur"}

	require.NoError(t, sessions.Create(ctx, "live", admin, time.Now().Add(time.Hour)))
	require.NoError(t, sessions.Create(ctx, "dead", admin, time.Now().Add(-time.Minute)))

	got, err := sessions.GetByTokenHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, admin, got)

	_, err = sessions.GetByTokenHash(ctx, "dead")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, sessions.DeleteExpired(ctx))
	require.NoError(t, sessions.DeleteByTokenHash(ctx, "live"))
	_, err = sessions.GetByTokenHash(ctx, "live")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
