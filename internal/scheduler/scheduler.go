package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jmoiron/sqlx"

	"github.com/example/alphalearn/internal/dailyset"
	"github.com/example/alphalearn/internal/database"
	"github.com/example/alphalearn/pkg/models"
)

// Notifier delivers a user's daily word list
type Notifier interface {
	SendDailySet(chatID int64, date string, words []models.DailyWord, learnedCount int) error
}

// Scheduler pre-builds each day's set shortly after midnight and sends the
// list to subscribed users inside the notification window
type Scheduler struct {
	scheduler *gocron.Scheduler
	db        *sqlx.DB
	sets      *dailyset.Service
	notifier  Notifier
	startHour int
	endHour   int
}

// New creates a scheduler. The notifier may be nil, in which case only the
// pre-build job runs.
func New(db *sqlx.DB, sets *dailyset.Service, notifier Notifier, startHour, endHour int) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		db:        db,
		sets:      sets,
		notifier:  notifier,
		startHour: startHour,
		endHour:   endHour,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start(prebuildTime string) {
	// Build the set before the first visitor so nobody pays the 26
	// enrichment lookups interactively
	s.scheduler.Every(1).Day().At(prebuildTime).Do(s.prebuildToday)

	if s.notifier != nil {
		s.scheduler.Every(1).Hour().Do(s.sendDailyWords)
	}

	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) prebuildToday() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.sets.EnsureDailySet(ctx, time.Now()); err != nil {
		log.Printf("Error pre-building daily set: %v", err)
	}
}

func (s *Scheduler) sendDailyWords() {
	currentHour := time.Now().Hour()
	if currentHour < s.startHour || currentHour > s.endHour {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	users, err := database.NewUserRepository(s.db).GetUsersForNotification(ctx, currentHour)
	if err != nil {
		log.Printf("Error getting users for notification: %v", err)
		return
	}

	stats := database.NewStatsRepository(s.db)

	for _, user := range users {
		words, err := s.sets.TodaySetForUser(ctx, user.ID)
		if err != nil {
			log.Printf("Error getting daily set for user %d: %v", user.ID, err)
			continue
		}

		learned, err := stats.LearnedCount(ctx, user.ID)
		if err != nil {
			log.Printf("Error getting learned count for user %d: %v", user.ID, err)
			continue
		}

		date := time.Now().Format(dailyset.DateFormat)
		if err := s.notifier.SendDailySet(user.TelegramChatID.Int64, date, words, learned); err != nil {
			log.Printf("Error sending daily set to user %d: %v", user.ID, err)
		}
	}
}
