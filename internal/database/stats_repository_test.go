package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_Counts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	userID := createTestUser(t, db, "alice")
	antID := createTestWord(t, db, "ant", "an insect")
	beeID := createTestWord(t, db, "bee", "another insect")
	catID := createTestWord(t, db, "cat", "a small animal")

	progress := NewProgressRepository(db)
	now := time.Now().UTC()
	require.NoError(t, progress.SetLearned(ctx, userID, antID, true, now))
	require.NoError(t, progress.SetLearned(ctx, userID, beeID, true, now.Add(time.Minute)))
	require.NoError(t, NewErrorRepository(db).MarkWrong(ctx, userID, catID, now))

	stats := NewStatsRepository(db)

	learned, err := stats.LearnedCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, learned)

	pending, err := stats.PendingErrorCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	recent, err := stats.RecentLearned(ctx, userID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "bee", recent[0].Word, "most recently touched word first")
	assert.Equal(t, "ant", recent[1].Word)
}

func TestUserRepository_CreateReusesExisting(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	first := createTestUser(t, db, "alice")

	again, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, first, again.ID)

	// A duplicate registration resolves to the existing row
	second := createTestUser(t, db, "alice")
	assert.Equal(t, first, second)
}

func TestUserRepository_GetUsersForNotification(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	alice := createTestUser(t, db, "alice")
	createTestUser(t, db, "bob") // no chat id registered

	require.NoError(t, repo.SetTelegramChat(ctx, alice, 12345))

	users, err := repo.GetUsersForNotification(ctx, 9)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, int64(12345), users[0].TelegramChatID.Int64)
}
