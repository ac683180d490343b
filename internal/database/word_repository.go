package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/example/alphalearn/pkg/models"
)

// WordRepository handles database operations for catalog words
type WordRepository struct {
	db Queryer
}

// NewWordRepository creates a new repository instance
func NewWordRepository(db Queryer) *WordRepository {
	return &WordRepository{db: db}
}

// GetByID returns a word by ID
func (r *WordRepository) GetByID(ctx context.Context, id int) (*models.Word, error) {
	var word models.Word
	err := r.db.GetContext(ctx, &word, "SELECT * FROM words WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get word by ID: %w", err)
	}
	return &word, nil
}

// FindByText returns the first catalog word matching the text
// (case-insensitive), or nil when the catalog has no such word
func (r *WordRepository) FindByText(ctx context.Context, text string) (*models.Word, error) {
	var word models.Word
	err := r.db.GetContext(ctx, &word,
		"SELECT * FROM words WHERE LOWER(word) = LOWER($1) ORDER BY id LIMIT 1",
		strings.TrimSpace(text))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find word: %v", err)
	}
	return &word, nil
}

// Create inserts a new word
func (r *WordRepository) Create(ctx context.Context, word *models.Word) error {
	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO words (word, definition, example, placeholder)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`
		return r.db.QueryRowxContext(ctx, query,
			word.Word, word.Definition, word.Example, word.Placeholder,
		).Scan(&word.ID, &word.CreatedAt)
	}

	// SQLite path without RETURNING
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO words (word, definition, example, placeholder, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
	`, word.Word, word.Definition, word.Example, word.Placeholder)
	if err != nil {
		return fmt.Errorf("failed to create word: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	word.ID = int(id)

	return nil
}

// GetOrCreate returns the existing catalog word for the text, inserting it
// first if absent. Lookup-or-insert, not strict dedup: a concurrent insert of
// the same text leaves two rows and either is acceptable.
func (r *WordRepository) GetOrCreate(ctx context.Context, word *models.Word) error {
	existing, err := r.FindByText(ctx, word.Word)
	if err != nil {
		return err
	}
	if existing != nil {
		*word = *existing
		return nil
	}
	return r.Create(ctx, word)
}

// CandidatesByLetter returns catalog words starting with the letter,
// case-insensitive, excluding synthesized placeholders
func (r *WordRepository) CandidatesByLetter(ctx context.Context, letter string) ([]models.Word, error) {
	var words []models.Word
	pattern := strings.ToLower(letter) + "%"
	err := r.db.SelectContext(ctx, &words, `
		SELECT * FROM words
		WHERE LOWER(word) LIKE $1 AND placeholder = false
		ORDER BY word
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates for letter %s: %v", letter, err)
	}
	return words, nil
}
