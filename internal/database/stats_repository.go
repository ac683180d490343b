package database

import (
	"context"
	"fmt"

	"github.com/example/alphalearn/pkg/models"
)

// StatsRepository handles read-only progress statistics
type StatsRepository struct {
	db Queryer
}

// NewStatsRepository creates a new repository instance
func NewStatsRepository(db Queryer) *StatsRepository {
	return &StatsRepository{db: db}
}

// LearnedCount returns how many words the user has learned
func (r *StatsRepository) LearnedCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM user_progress WHERE user_id = $1 AND learned = true",
		userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count learned words: %v", err)
	}
	return count, nil
}

// RecentLearned returns the user's most recently learned words
func (r *StatsRepository) RecentLearned(ctx context.Context, userID int64, limit int) ([]models.LearnedWord, error) {
	var words []models.LearnedWord
	err := r.db.SelectContext(ctx, &words, `
		SELECT p.word_id, w.word, w.definition, p.correct_count, p.last_tested_at
		FROM user_progress p
		JOIN words w ON p.word_id = w.id
		WHERE p.user_id = $1 AND p.learned = true
		ORDER BY p.last_tested_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent learned words: %v", err)
	}
	return words, nil
}

// PendingErrorCount returns how many words currently sit in the user's
// error queue
func (r *StatsRepository) PendingErrorCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM user_errors WHERE user_id = $1",
		userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending errors: %v", err)
	}
	return count, nil
}
