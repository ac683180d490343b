package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the notification window and daily pre-build
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
	DefaultPrebuildTime          = "00:05"
)

// Config carries the process configuration, read from the environment with
// an optional .env file
type Config struct {
	DBType      string // "sqlite3" or "postgres"
	DBPath      string // sqlite file path
	DatabaseURL string // postgres connection string

	DictionaryURL     string
	DictionaryTimeout time.Duration

	TelegramToken string
	ImportFile    string

	PrebuildTime          string // HH:MM, local to the scheduler's UTC clock
	NotificationStartHour int
	NotificationEndHour   int
}

// Load reads the configuration. A missing .env file is fine; every value
// has a default.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBType:                getEnv("DB_TYPE", "sqlite3"),
		DBPath:                getEnv("DB_PATH", ""),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		DictionaryURL:         getEnv("DICTIONARY_API_URL", ""),
		DictionaryTimeout:     5 * time.Second,
		TelegramToken:         getEnv("TELEGRAM_BOT_TOKEN", ""),
		ImportFile:            getEnv("IMPORT_FILE", ""),
		PrebuildTime:          getEnv("PREBUILD_TIME", DefaultPrebuildTime),
		NotificationStartHour: getEnvInt("NOTIFICATION_START_HOUR", DefaultNotificationStartHour),
		NotificationEndHour:   getEnvInt("NOTIFICATION_END_HOUR", DefaultNotificationEndHour),
	}

	if t := getEnvInt("DICTIONARY_TIMEOUT_SECONDS", 0); t > 0 {
		cfg.DictionaryTimeout = time.Duration(t) * time.Second
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
