package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"transit-delay-service/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))
	return db
}

func TestSqliteUserRepositoryRoundTrip(t *testing.T) {
	repo := NewSqliteUserRepository(openTestDB(t))
	ctx := context.Background()

	user := domain.User{Email: "rider@example.com", PasswordHash: "$2a$10$hash", Name: "Rider"}
	require.NoError(t, repo.CreateUser(ctx, user))

	got, err := repo.FindUser(ctx, "rider@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)
}

func TestSqliteUserRepositoryFindUnknown(t *testing.T) {
	repo := NewSqliteUserRepository(openTestDB(t))

	got, err := repo.FindUser(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSqliteUserRepositoryRejectsDuplicateEmail(t *testing.T) {
	repo := NewSqliteUserRepository(openTestDB(t))
	ctx := context.Background()

	user := domain.User{Email: "rider@example.com", PasswordHash: "h1"}
	require.NoError(t, repo.CreateUser(ctx, user))

	err := repo.CreateUser(ctx, domain.User{Email: "rider@example.com", PasswordHash: "h2"})
	assert.Error(t, err)
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, InitSchema(db))
}
