package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config describes how to reach the database
type Config struct {
	Driver string // "sqlite3" (default) or "postgres"
	DSN    string // file path for sqlite, connection string for postgres
}

// Connect opens the database connection and initializes the schema
func Connect(cfg Config) (*sqlx.DB, error) {
	if cfg.Driver == "" {
		cfg.Driver = "sqlite3"
	}

	if cfg.Driver == "sqlite3" {
		if cfg.DSN == "" {
			cfg.DSN = filepath.Join("data", "alphalearn.db")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if cfg.Driver == "sqlite3" {
		// Enable foreign keys
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	// Postgres deployments manage their schema externally
	if cfg.Driver == "sqlite3" {
		if err := initializeSchema(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			telegram_chat_id INTEGER,
			notification_hour INTEGER DEFAULT 9,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %v", err)
	}

	// Duplicate word texts are tolerated: the catalog grows by
	// lookup-or-insert, not strict dedup
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL,
			definition TEXT,
			example TEXT,
			placeholder BOOLEAN DEFAULT false,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create words table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_sets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(date)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create daily_sets table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_set_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			daily_set_id INTEGER NOT NULL,
			letter TEXT NOT NULL,
			word_id INTEGER NOT NULL,
			FOREIGN KEY (daily_set_id) REFERENCES daily_sets(id),
			FOREIGN KEY (word_id) REFERENCES words(id),
			UNIQUE(daily_set_id, letter)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create daily_set_entries table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_daily_sets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			daily_set_id INTEGER NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (daily_set_id) REFERENCES daily_sets(id),
			UNIQUE(user_id, date)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_daily_sets table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_progress (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			word_id INTEGER NOT NULL,
			first_tested_at TIMESTAMP NOT NULL,
			last_tested_at TIMESTAMP NOT NULL,
			correct_count INTEGER DEFAULT 0,
			incorrect_count INTEGER DEFAULT 0,
			learned BOOLEAN DEFAULT false,
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (word_id) REFERENCES words(id),
			UNIQUE(user_id, word_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_progress table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			word_id INTEGER NOT NULL,
			last_wrong_at TIMESTAMP NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (word_id) REFERENCES words(id),
			UNIQUE(user_id, word_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_errors table: %v", err)
	}

	return nil
}
