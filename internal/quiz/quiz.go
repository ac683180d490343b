package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/alphalearn/internal/dailyset"
	"github.com/example/alphalearn/internal/database"
)

// Mode selects the question pool for a quiz round
type Mode string

const (
	// ModeDaily tests today's bound set, excluding learned words
	ModeDaily Mode = "daily"
	// ModeErrors retests the words currently in the error queue
	ModeErrors Mode = "errors"
)

// ErrInvalidInput marks requests rejected before touching the ledger
var ErrInvalidInput = errors.New("invalid input")

// Question is one spelling-recall prompt. The word itself is withheld; the
// user has to produce it from the definition and example.
type Question struct {
	WordID     int    `json:"word_id"`
	Letter     string `json:"letter,omitempty"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// Result is the outcome of grading one submitted answer
type Result struct {
	WordID  int    `json:"word_id"`
	Word    string `json:"word"`
	Correct bool   `json:"correct"`
	Learned bool   `json:"learned"`
}

// Service runs stateless quiz rounds against the ledger and error queue
type Service struct {
	db   *sqlx.DB
	sets *dailyset.Service
	rnd  *rand.Rand
}

// New creates the quiz service. A nil rnd gets a time-based seed; tests pass
// a fixed one for a reproducible shuffle.
func New(db *sqlx.DB, sets *dailyset.Service, rnd *rand.Rand) *Service {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{db: db, sets: sets, rnd: rnd}
}

// Start selects and shuffles the question pool for the mode. The order is
// random per call and nothing about the round is persisted.
func (s *Service) Start(ctx context.Context, mode Mode, userID int64, includeLearned bool) ([]Question, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	var questions []Question

	switch mode {
	case ModeDaily:
		entries, err := s.sets.TodaySetForUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		learned := map[int]bool{}
		if !includeLearned {
			learned, err = database.NewProgressRepository(s.db).LearnedWordIDs(ctx, userID)
			if err != nil {
				return nil, err
			}
		}

		for _, e := range entries {
			if learned[e.WordID] {
				continue
			}
			questions = append(questions, Question{
				WordID:     e.WordID,
				Letter:     e.Letter,
				Definition: e.Definition,
				Example:    e.Example,
			})
		}

	case ModeErrors:
		missed, err := database.NewErrorRepository(s.db).ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, m := range missed {
			questions = append(questions, Question{
				WordID:     m.WordID,
				Definition: m.Definition,
				Example:    m.Example,
			})
		}

	default:
		return nil, fmt.Errorf("%w: unknown quiz mode %q", ErrInvalidInput, mode)
	}

	s.rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return questions, nil
}

// Grade checks the submitted spelling against the canonical word
// (whitespace-trimmed, case-insensitive) and applies the ledger and
// error-queue updates in a single transaction, so a crash can never leave
// the two inconsistent.
func (s *Service) Grade(ctx context.Context, userID int64, wordID int, answer string) (*Result, error) {
	if userID <= 0 || wordID <= 0 {
		return nil, fmt.Errorf("%w: user and word ids must be positive", ErrInvalidInput)
	}
	submitted := strings.TrimSpace(answer)
	if submitted == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrInvalidInput)
	}

	word, err := database.NewWordRepository(s.db).GetByID(ctx, wordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: unknown word %d", ErrInvalidInput, wordID)
		}
		return nil, err
	}

	correct := strings.EqualFold(submitted, word.Word)
	now := time.Now()

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if err := database.NewProgressRepository(tx).RecordResult(ctx, userID, wordID, correct, now); err != nil {
		return nil, err
	}

	errorRepo := database.NewErrorRepository(tx)
	if correct {
		err = errorRepo.Delete(ctx, userID, wordID)
	} else {
		err = errorRepo.MarkWrong(ctx, userID, wordID, now)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit grade: %v", err)
	}

	progress, err := database.NewProgressRepository(s.db).GetByUserAndWord(ctx, userID, wordID)
	if err != nil {
		return nil, err
	}

	result := &Result{
		WordID:  wordID,
		Word:    word.Word,
		Correct: correct,
	}
	if progress != nil {
		result.Learned = progress.Learned
	}
	return result, nil
}
