package models

import "time"

// ProgressRecord tracks a user's test history for a specific word
type ProgressRecord struct {
	ID             int       `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	WordID         int       `json:"word_id" db:"word_id"`
	FirstTestedAt  time.Time `json:"first_tested_at" db:"first_tested_at"`
	LastTestedAt   time.Time `json:"last_tested_at" db:"last_tested_at"`
	CorrectCount   int       `json:"correct_count" db:"correct_count"`
	IncorrectCount int       `json:"incorrect_count" db:"incorrect_count"`
	Learned        bool      `json:"learned" db:"learned"`
}

// LearnedWord is a progress record joined with its word, used for stats reads
type LearnedWord struct {
	WordID       int       `json:"word_id" db:"word_id"`
	Word         string    `json:"word" db:"word"`
	Definition   string    `json:"definition" db:"definition"`
	CorrectCount int       `json:"correct_count" db:"correct_count"`
	LastTestedAt time.Time `json:"last_tested_at" db:"last_tested_at"`
}
