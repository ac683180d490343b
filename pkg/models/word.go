package models

import "time"

// Word represents a catalog entry to be learned
type Word struct {
	ID          int       `json:"id" db:"id"`
	Word        string    `json:"word" db:"word"`
	Definition  string    `json:"definition" db:"definition"`
	Example     string    `json:"example" db:"example"`
	Placeholder bool      `json:"placeholder" db:"placeholder"` // Synthesized for a letter gap, needs curation
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
