package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySetRepository_EnsureIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDailySetRepository(db)

	first, err := repo.Ensure(ctx, "2024-01-01")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.Ensure(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := repo.Ensure(ctx, "2024-01-02")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestDailySetRepository_GetByDateMissing(t *testing.T) {
	db := newTestDB(t)

	set, err := NewDailySetRepository(db).GetByDate(context.Background(), "1999-12-31")
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestDailySetRepository_AddEntryDuplicateLetter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDailySetRepository(db)

	apple := createTestWord(t, db, "apple", "a fruit")
	avocado := createTestWord(t, db, "avocado", "another fruit")
	ball := createTestWord(t, db, "ball", "a toy")

	set, err := repo.Ensure(ctx, "2024-01-01")
	require.NoError(t, err)

	require.NoError(t, repo.AddEntry(ctx, set.ID, "A", apple))
	// The losing insert of a racing build is dropped, not an error
	require.NoError(t, repo.AddEntry(ctx, set.ID, "A", avocado))
	require.NoError(t, repo.AddEntry(ctx, set.ID, "B", ball))

	entries, err := repo.Entries(ctx, set.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Letter)
	assert.Equal(t, "apple", entries[0].Word)
	assert.Equal(t, "B", entries[1].Letter)
	assert.Equal(t, "ball", entries[1].Word)
}

func TestDailySetRepository_BindingPinsFirstSet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDailySetRepository(db)

	userID := createTestUser(t, db, "alice")

	first, err := repo.Ensure(ctx, "2024-01-01")
	require.NoError(t, err)
	second, err := repo.Ensure(ctx, "2024-01-02")
	require.NoError(t, err)

	bound, err := repo.Binding(ctx, userID, "2024-01-01")
	require.NoError(t, err)
	assert.Zero(t, bound, "no binding before first visit")

	bound, err = repo.EnsureBinding(ctx, userID, "2024-01-01", first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, bound)

	// A second attempt with a different set id keeps the original binding
	bound, err = repo.EnsureBinding(ctx, userID, "2024-01-01", second.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, bound)
}
