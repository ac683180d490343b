package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepository_RecordResultCreatesThenIncrements(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepository(db)

	userID := createTestUser(t, db, "alice")
	wordID := createTestWord(t, db, "cat", "a small animal")

	first := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	require.NoError(t, repo.RecordResult(ctx, userID, wordID, false, first))

	record, err := repo.GetByUserAndWord(ctx, userID, wordID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 0, record.CorrectCount)
	assert.Equal(t, 1, record.IncorrectCount)
	assert.False(t, record.Learned)
	assert.True(t, record.FirstTestedAt.Equal(first))

	require.NoError(t, repo.RecordResult(ctx, userID, wordID, true, second))

	record, err = repo.GetByUserAndWord(ctx, userID, wordID)
	require.NoError(t, err)
	assert.Equal(t, 1, record.CorrectCount)
	assert.Equal(t, 1, record.IncorrectCount)
	assert.True(t, record.FirstTestedAt.Equal(first), "first_tested_at is pinned at creation")
	assert.True(t, record.LastTestedAt.Equal(second))
}

func TestProgressRepository_LearnedAfterThreeCleanCorrects(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepository(db)

	userID := createTestUser(t, db, "alice")
	wordID := createTestWord(t, db, "dog", "a loyal animal")

	now := time.Now().UTC()
	for i := 0; i < LearnedThreshold; i++ {
		require.NoError(t, repo.RecordResult(ctx, userID, wordID, true, now.Add(time.Duration(i)*time.Minute)))
	}

	record, err := repo.GetByUserAndWord(ctx, userID, wordID)
	require.NoError(t, err)
	assert.Equal(t, LearnedThreshold, record.CorrectCount)
	assert.True(t, record.Learned)
}

func TestProgressRepository_IncorrectBlocksAutoLearn(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepository(db)

	userID := createTestUser(t, db, "alice")
	wordID := createTestWord(t, db, "fox", "a cunning animal")

	now := time.Now().UTC()
	require.NoError(t, repo.RecordResult(ctx, userID, wordID, false, now))
	for i := 0; i < LearnedThreshold+2; i++ {
		require.NoError(t, repo.RecordResult(ctx, userID, wordID, true, now.Add(time.Duration(i+1)*time.Minute)))
	}

	record, err := repo.GetByUserAndWord(ctx, userID, wordID)
	require.NoError(t, err)
	assert.False(t, record.Learned, "a single incorrect answer keeps the word out of auto-learn")
}

func TestProgressRepository_LearnedNeverImplicitlyReset(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepository(db)

	userID := createTestUser(t, db, "alice")
	wordID := createTestWord(t, db, "owl", "a nocturnal bird")

	now := time.Now().UTC()
	for i := 0; i < LearnedThreshold; i++ {
		require.NoError(t, repo.RecordResult(ctx, userID, wordID, true, now.Add(time.Duration(i)*time.Minute)))
	}
	require.NoError(t, repo.RecordResult(ctx, userID, wordID, false, now.Add(time.Hour)))

	record, err := repo.GetByUserAndWord(ctx, userID, wordID)
	require.NoError(t, err)
	assert.True(t, record.Learned, "grading never clears the learned flag")
	assert.Equal(t, 1, record.IncorrectCount)
}

func TestProgressRepository_SetLearned(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepository(db)

	userID := createTestUser(t, db, "alice")
	wordID := createTestWord(t, db, "zebra", "a striped animal")

	now := time.Now().UTC()

	// First interaction may be a manual mark-learned
	require.NoError(t, repo.SetLearned(ctx, userID, wordID, true, now))

	record, err := repo.GetByUserAndWord(ctx, userID, wordID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.Learned)
	assert.Equal(t, 0, record.CorrectCount)

	// Explicit unlearn is allowed
	require.NoError(t, repo.SetLearned(ctx, userID, wordID, false, now.Add(time.Minute)))

	record, err = repo.GetByUserAndWord(ctx, userID, wordID)
	require.NoError(t, err)
	assert.False(t, record.Learned)
}

func TestProgressRepository_GetMissingPair(t *testing.T) {
	db := newTestDB(t)

	record, err := NewProgressRepository(db).GetByUserAndWord(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestProgressRepository_LearnedWordIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepository(db)

	userID := createTestUser(t, db, "alice")
	learnedID := createTestWord(t, db, "ant", "an insect")
	pendingID := createTestWord(t, db, "bee", "another insect")

	now := time.Now().UTC()
	require.NoError(t, repo.SetLearned(ctx, userID, learnedID, true, now))
	require.NoError(t, repo.RecordResult(ctx, userID, pendingID, true, now))

	learned, err := repo.LearnedWordIDs(ctx, userID)
	require.NoError(t, err)
	assert.True(t, learned[learnedID])
	assert.False(t, learned[pendingID])
}
