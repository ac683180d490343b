package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/alphalearn/pkg/models"
)

// LearnedThreshold is the number of correct answers, with no incorrect ones,
// after which a word is automatically considered learned
const LearnedThreshold = 3

// ProgressRepository handles database operations for the per-user,
// per-word progress ledger
type ProgressRepository struct {
	db Queryer
}

// NewProgressRepository creates a new repository instance
func NewProgressRepository(db Queryer) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// GetByUserAndWord returns the ledger record for the pair, or nil when the
// user has never interacted with the word
func (r *ProgressRepository) GetByUserAndWord(ctx context.Context, userID int64, wordID int) (*models.ProgressRecord, error) {
	var progress models.ProgressRecord
	err := r.db.GetContext(ctx, &progress,
		"SELECT * FROM user_progress WHERE user_id = $1 AND word_id = $2",
		userID, wordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user progress: %v", err)
	}
	return &progress, nil
}

// RecordResult applies one graded answer to the ledger. The first interaction
// creates the record with first_tested_at = now; every call bumps
// last_tested_at and exactly one of the counters. The learned flag flips true
// once the record reaches LearnedThreshold correct answers with zero
// incorrect ones, and grading never flips it back.
func (r *ProgressRepository) RecordResult(ctx context.Context, userID int64, wordID int, correct bool, now time.Time) error {
	correctDelta := 0
	incorrectDelta := 0
	if correct {
		correctDelta = 1
	} else {
		incorrectDelta = 1
	}

	query := `
		INSERT INTO user_progress (
			user_id, word_id, first_tested_at, last_tested_at,
			correct_count, incorrect_count, learned
		) VALUES ($1, $2, $3, $3, $4, $5, $6)
		ON CONFLICT (user_id, word_id) DO UPDATE SET
			last_tested_at = EXCLUDED.last_tested_at,
			correct_count = user_progress.correct_count + EXCLUDED.correct_count,
			incorrect_count = user_progress.incorrect_count + EXCLUDED.incorrect_count,
			learned = user_progress.learned OR (
				user_progress.correct_count + EXCLUDED.correct_count >= $7
				AND user_progress.incorrect_count + EXCLUDED.incorrect_count = 0
			)
	`
	learnedNow := correctDelta >= LearnedThreshold && incorrectDelta == 0

	_, err := r.db.ExecContext(ctx, query,
		userID, wordID, now, correctDelta, incorrectDelta, learnedNow, LearnedThreshold)
	if err != nil {
		return fmt.Errorf("failed to record result: %v", err)
	}
	return nil
}

// SetLearned sets the learned flag explicitly, creating the ledger record if
// this is the user's first interaction with the word
func (r *ProgressRepository) SetLearned(ctx context.Context, userID int64, wordID int, learned bool, now time.Time) error {
	query := `
		INSERT INTO user_progress (
			user_id, word_id, first_tested_at, last_tested_at, learned
		) VALUES ($1, $2, $3, $3, $4)
		ON CONFLICT (user_id, word_id) DO UPDATE SET
			learned = EXCLUDED.learned,
			last_tested_at = EXCLUDED.last_tested_at
	`
	_, err := r.db.ExecContext(ctx, query, userID, wordID, now, learned)
	if err != nil {
		return fmt.Errorf("failed to set learned: %v", err)
	}
	return nil
}

// LearnedWordIDs returns the ids of all words the user has learned
func (r *ProgressRepository) LearnedWordIDs(ctx context.Context, userID int64) (map[int]bool, error) {
	var ids []int
	err := r.db.SelectContext(ctx, &ids,
		"SELECT word_id FROM user_progress WHERE user_id = $1 AND learned = true",
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get learned words: %v", err)
	}

	learned := make(map[int]bool, len(ids))
	for _, id := range ids {
		learned[id] = true
	}
	return learned, nil
}
