package profile

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fateshift/pkg/database"
	"fateshift/pkg/models"
)

const testUserID = "user-1"

func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON;`)
	require.NoError(t, err)
	require.NoError(t, database.MigrateFrom(db, "../../docs/schema.sql"))

	_, err = db.Exec(`
		INSERT INTO users (id, username, email, password_hash)
		VALUES (?, 'tester', 'tester@example.com', 'x')
	`, testUserID)
	require.NoError(t, err)

	return NewRepo(db)
}

func newProfile(name string) models.BirthProfile {
	return models.BirthProfile{
		ID:        uuid.NewString(),
		UserID:    testUserID,
		Name:      name,
		BirthDate: "1990-03-15",
		BirthTime: "14:30",
		Timezone:  "Europe/Paris",
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := newProfile("Me")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.Get(ctx, testUserID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, "1990-03-15", got.BirthDate)
	assert.Equal(t, "14:30", got.BirthTime)
	assert.Empty(t, got.BirthPlace)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Get(context.Background(), testUserID, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetScopedToOwner(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := newProfile("Mine")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.Get(ctx, "someone-else", p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := newProfile("Before")
	require.NoError(t, repo.Create(ctx, p))

	p.Name = "After"
	p.BirthDate = "1991-04-16"
	ok, err := repo.Update(ctx, p)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Get(ctx, testUserID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "1991-04-16", got.BirthDate)

	missing := newProfile("Ghost")
	ok, err = repo.Update(ctx, missing)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := newProfile("Gone soon")
	require.NoError(t, repo.Create(ctx, p))

	ok, err := repo.Delete(ctx, testUserID, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, testUserID, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListPagination(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newProfile("p")))
	}

	items, total, err := repo.List(ctx, testUserID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, items, 2)

	items, total, err = repo.List(ctx, testUserID, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, items, 1)

	items, total, err = repo.List(ctx, "someone-else", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
}
