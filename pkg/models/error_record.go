package models

import "time"

// ErrorRecord marks a word the user most recently missed and has not resolved
type ErrorRecord struct {
	ID          int       `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	WordID      int       `json:"word_id" db:"word_id"`
	LastWrongAt time.Time `json:"last_wrong_at" db:"last_wrong_at"`
}

// ErrorWord is an error record joined with its word, ordered most recent first
type ErrorWord struct {
	WordID      int       `json:"word_id" db:"word_id"`
	Word        string    `json:"word" db:"word"`
	Definition  string    `json:"definition" db:"definition"`
	Example     string    `json:"example" db:"example"`
	LastWrongAt time.Time `json:"last_wrong_at" db:"last_wrong_at"`
}
