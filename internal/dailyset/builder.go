package dailyset

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/alphalearn/internal/database"
	"github.com/example/alphalearn/internal/dictionary"
	"github.com/example/alphalearn/pkg/models"
)

// DateFormat is the calendar date key used for daily sets and bindings
const DateFormat = "2006-01-02"

// letters are the A-Z slots of a daily set
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Enricher fetches a definition and example for a word. Implementations
// absorb their own failures and return placeholder text instead of erroring.
type Enricher interface {
	Lookup(ctx context.Context, word string) (definition, example string)
}

// Service builds the shared daily set for a date and binds users to it
type Service struct {
	sets  *database.DailySetRepository
	words *database.WordRepository
	dict  Enricher
	rnd   *rand.Rand
}

// New creates the daily set service. A nil rnd gets a time-based seed; tests
// pass a fixed one for reproducible selection.
func New(db *sqlx.DB, dict Enricher, rnd *rand.Rand) *Service {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		sets:  database.NewDailySetRepository(db),
		words: database.NewWordRepository(db),
		dict:  dict,
		rnd:   rnd,
	}
}

// EnsureDailySet returns the daily set id for the date, building the set if
// this is the first request of the day. Rebuilding an existing date only
// fills letters that are still missing, so repeated calls are idempotent.
func (s *Service) EnsureDailySet(ctx context.Context, date time.Time) (int, error) {
	day := date.Format(DateFormat)

	set, err := s.sets.Ensure(ctx, day)
	if err != nil {
		return 0, err
	}

	entries, err := s.sets.Entries(ctx, set.ID)
	if err != nil {
		return 0, err
	}
	filled := make(map[string]bool, len(entries))
	for _, e := range entries {
		filled[e.Letter] = true
	}

	for _, r := range letters {
		letter := string(r)
		if filled[letter] {
			continue
		}

		word, err := s.chooseWord(ctx, letter)
		if err != nil {
			return 0, fmt.Errorf("failed to choose word for letter %s: %w", letter, err)
		}

		// A racing build may have filled the letter meanwhile; the
		// duplicate insert is dropped on the unique constraint
		if err := s.sets.AddEntry(ctx, set.ID, letter, word.ID); err != nil {
			return 0, err
		}
	}

	return set.ID, nil
}

// chooseWord picks a catalog word starting with the letter, falling back to
// the seed list and finally to a synthesized placeholder. A day never fails
// to build because a letter has no word.
func (s *Service) chooseWord(ctx context.Context, letter string) (*models.Word, error) {
	candidates, err := s.words.CandidatesByLetter(ctx, letter)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 {
		return &candidates[s.rnd.Intn(len(candidates))], nil
	}

	if seeds := seedsForLetter(letter); len(seeds) > 0 {
		text := seeds[s.rnd.Intn(len(seeds))]
		word := &models.Word{Word: text}
		word.Definition, word.Example = s.enrich(ctx, text)
		if err := s.words.GetOrCreate(ctx, word); err != nil {
			return nil, err
		}
		return word, nil
	}

	word := &models.Word{
		Word:        strings.ToLower(letter) + "-placeholder",
		Definition:  dictionary.DefinitionUnavailable,
		Example:     dictionary.ExampleUnavailable,
		Placeholder: true,
	}
	if err := s.words.GetOrCreate(ctx, word); err != nil {
		return nil, err
	}
	return word, nil
}

func (s *Service) enrich(ctx context.Context, text string) (string, string) {
	if s.dict == nil {
		return dictionary.DefinitionUnavailable, dictionary.ExampleUnavailable
	}
	return s.dict.Lookup(ctx, text)
}

// SetForUser returns the letter-ordered word list the user is bound to for
// the date, creating the binding on first access. Once bound, the user keeps
// seeing the same set for that date.
func (s *Service) SetForUser(ctx context.Context, userID int64, date time.Time) ([]models.DailyWord, error) {
	day := date.Format(DateFormat)

	setID, err := s.sets.Binding(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if setID == 0 {
		built, err := s.EnsureDailySet(ctx, date)
		if err != nil {
			return nil, err
		}
		setID, err = s.sets.EnsureBinding(ctx, userID, day, built)
		if err != nil {
			return nil, err
		}
	}

	return s.sets.Entries(ctx, setID)
}

// TodaySetForUser is SetForUser for the current date
func (s *Service) TodaySetForUser(ctx context.Context, userID int64) ([]models.DailyWord, error) {
	return s.SetForUser(ctx, userID, time.Now())
}
