package models

import (
	"database/sql"
	"time"
)

// User represents a registered learner. Authentication is owned by the
// presentation layer; the core only needs stable ids and delivery settings.
type User struct {
	ID               int64         `json:"id" db:"id"`
	Username         string        `json:"username" db:"username"`
	TelegramChatID   sql.NullInt64 `json:"telegram_chat_id" db:"telegram_chat_id"`
	NotificationHour int           `json:"notification_hour" db:"notification_hour"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
}
