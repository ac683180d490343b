package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/example/alphalearn/pkg/models"
)

// newTestDB opens a fresh sqlite database in a temp dir with the full schema
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Connect(Config{Driver: "sqlite3", DSN: filepath.Join(t.TempDir(), "alphalearn.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func createTestUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()

	user := &models.User{Username: username}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user.ID
}

func createTestWord(t *testing.T, db *sqlx.DB, text, definition string) int {
	t.Helper()

	word := &models.Word{Word: text, Definition: definition, Example: "Example with " + text + "."}
	require.NoError(t, NewWordRepository(db).Create(context.Background(), word))
	return word.ID
}
