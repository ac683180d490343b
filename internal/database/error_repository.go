package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/alphalearn/pkg/models"
)

// ErrorRepository handles database operations for the missed-words queue
type ErrorRepository struct {
	db Queryer
}

// NewErrorRepository creates a new repository instance
func NewErrorRepository(db Queryer) *ErrorRepository {
	return &ErrorRepository{db: db}
}

// MarkWrong upserts the error record for the pair, moving it to the front of
// the retest queue
func (r *ErrorRepository) MarkWrong(ctx context.Context, userID int64, wordID int, now time.Time) error {
	query := `
		INSERT INTO user_errors (user_id, word_id, last_wrong_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, word_id) DO UPDATE SET
			last_wrong_at = EXCLUDED.last_wrong_at
	`
	_, err := r.db.ExecContext(ctx, query, userID, wordID, now)
	if err != nil {
		return fmt.Errorf("failed to mark word wrong: %v", err)
	}
	return nil
}

// Delete removes the error record for the pair. No-op if absent; used both
// for clear-on-correct and for manual dismissal.
func (r *ErrorRepository) Delete(ctx context.Context, userID int64, wordID int) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM user_errors WHERE user_id = $1 AND word_id = $2",
		userID, wordID)
	if err != nil {
		return fmt.Errorf("failed to delete error record: %v", err)
	}
	return nil
}

// Dismiss removes the error record without a correct answer, a manual
// override from the review screen
func (r *ErrorRepository) Dismiss(ctx context.Context, userID int64, wordID int) error {
	return r.Delete(ctx, userID, wordID)
}

// ListByUser returns the user's missed words, most recently missed first.
// The ordering is the retest priority.
func (r *ErrorRepository) ListByUser(ctx context.Context, userID int64) ([]models.ErrorWord, error) {
	var words []models.ErrorWord
	err := r.db.SelectContext(ctx, &words, `
		SELECT e.word_id, w.word, w.definition, w.example, e.last_wrong_at
		FROM user_errors e
		JOIN words w ON e.word_id = w.id
		WHERE e.user_id = $1
		ORDER BY e.last_wrong_at DESC, e.id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list errors: %v", err)
	}
	return words, nil
}

// Exists reports whether the pair currently sits in the error queue
func (r *ErrorRepository) Exists(ctx context.Context, userID int64, wordID int) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM user_errors WHERE user_id = $1 AND word_id = $2",
		userID, wordID)
	if err != nil {
		return false, fmt.Errorf("failed to check error record: %v", err)
	}
	return count > 0, nil
}
