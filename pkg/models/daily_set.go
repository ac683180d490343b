package models

import "time"

// DailySet is the shared word collection for one calendar date
type DailySet struct {
	ID        int       `json:"id" db:"id"`
	Date      string    `json:"date" db:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DailySetEntry maps one letter of a daily set to a catalog word
type DailySetEntry struct {
	ID         int    `json:"id" db:"id"`
	DailySetID int    `json:"daily_set_id" db:"daily_set_id"`
	Letter     string `json:"letter" db:"letter"` // A-Z
	WordID     int    `json:"word_id" db:"word_id"`
}

// UserDailyBinding pins a user to the daily set they first saw on a date
type UserDailyBinding struct {
	ID         int    `json:"id" db:"id"`
	UserID     int64  `json:"user_id" db:"user_id"`
	Date       string `json:"date" db:"date"`
	DailySetID int    `json:"daily_set_id" db:"daily_set_id"`
}

// DailyWord is a daily set entry joined with its word, as returned to callers
type DailyWord struct {
	Letter      string `json:"letter" db:"letter"`
	WordID      int    `json:"word_id" db:"word_id"`
	Word        string `json:"word" db:"word"`
	Definition  string `json:"definition" db:"definition"`
	Example     string `json:"example" db:"example"`
	Placeholder bool   `json:"placeholder" db:"placeholder"`
}
