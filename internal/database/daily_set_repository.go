package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/alphalearn/pkg/models"
)

// DailySetRepository handles database operations for daily sets, their
// letter entries and per-user bindings
type DailySetRepository struct {
	db Queryer
}

// NewDailySetRepository creates a new repository instance
func NewDailySetRepository(db Queryer) *DailySetRepository {
	return &DailySetRepository{db: db}
}

// GetByDate returns the daily set for a date, or nil when none exists yet
func (r *DailySetRepository) GetByDate(ctx context.Context, date string) (*models.DailySet, error) {
	var set models.DailySet
	err := r.db.GetContext(ctx, &set, "SELECT * FROM daily_sets WHERE date = $1", date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily set: %v", err)
	}
	return &set, nil
}

// Ensure returns the daily set for the date, creating it if absent. A
// concurrent create for the same date loses on the UNIQUE(date) constraint
// and re-reads the winner's row.
func (r *DailySetRepository) Ensure(ctx context.Context, date string) (*models.DailySet, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_sets (date) VALUES ($1)
		ON CONFLICT (date) DO NOTHING
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure daily set: %v", err)
	}

	set, err := r.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, fmt.Errorf("daily set for %s missing after insert", date)
	}
	return set, nil
}

// AddEntry records the word chosen for a letter of a set. A duplicate letter
// from a racing build is silently dropped, so one set never carries two
// words for the same letter.
func (r *DailySetRepository) AddEntry(ctx context.Context, setID int, letter string, wordID int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_set_entries (daily_set_id, letter, word_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (daily_set_id, letter) DO NOTHING
	`, setID, letter, wordID)
	if err != nil {
		return fmt.Errorf("failed to add entry for letter %s: %v", letter, err)
	}
	return nil
}

// Entries returns the letter-ordered word list for a set
func (r *DailySetRepository) Entries(ctx context.Context, setID int) ([]models.DailyWord, error) {
	var entries []models.DailyWord
	err := r.db.SelectContext(ctx, &entries, `
		SELECT e.letter, e.word_id, w.word, w.definition, w.example, w.placeholder
		FROM daily_set_entries e
		JOIN words w ON e.word_id = w.id
		WHERE e.daily_set_id = $1
		ORDER BY e.letter
	`, setID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %v", err)
	}
	return entries, nil
}

// Binding returns the user's pinned daily set id for a date, or 0 when the
// user has not visited that day yet
func (r *DailySetRepository) Binding(ctx context.Context, userID int64, date string) (int, error) {
	var setID int
	err := r.db.GetContext(ctx, &setID,
		"SELECT daily_set_id FROM user_daily_sets WHERE user_id = $1 AND date = $2",
		userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get binding: %v", err)
	}
	return setID, nil
}

// EnsureBinding pins the user to a set for the date and returns the pinned
// set id. When two first-of-day requests race, UNIQUE(user_id, date) lets
// only one insert through and both callers read back the same binding.
func (r *DailySetRepository) EnsureBinding(ctx context.Context, userID int64, date string, setID int) (int, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_daily_sets (user_id, date, daily_set_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO NOTHING
	`, userID, date, setID)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure binding: %v", err)
	}

	bound, err := r.Binding(ctx, userID, date)
	if err != nil {
		return 0, err
	}
	if bound == 0 {
		return 0, fmt.Errorf("binding for user %d on %s missing after insert", userID, date)
	}
	return bound, nil
}
