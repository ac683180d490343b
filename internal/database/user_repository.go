package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/alphalearn/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db Queryer
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db Queryer) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID returns a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %v", err)
	}
	return &user, nil
}

// GetByUsername returns a user by username, or nil when unknown
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE username = $1", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %v", err)
	}
	return &user, nil
}

// Create inserts a new user. A duplicate username loses on the UNIQUE
// constraint and the existing row is reused.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.NotificationHour == 0 {
		user.NotificationHour = 9
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, telegram_chat_id, notification_hour)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
	`, user.Username, user.TelegramChatID, user.NotificationHour)
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}

	existing, err := r.GetByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("user %s missing after insert", user.Username)
	}
	*user = *existing
	return nil
}

// SetTelegramChat registers the chat id used for daily word delivery
func (r *UserRepository) SetTelegramChat(ctx context.Context, userID int64, chatID int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET telegram_chat_id = $1 WHERE id = $2",
		chatID, userID)
	if err != nil {
		return fmt.Errorf("failed to set telegram chat: %v", err)
	}
	return nil
}

// GetUsersForNotification returns users whose delivery hour matches and who
// have a chat id registered
func (r *UserRepository) GetUsersForNotification(ctx context.Context, hour int) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users, `
		SELECT * FROM users
		WHERE notification_hour = $1 AND telegram_chat_id IS NOT NULL
		ORDER BY id
	`, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get users for notification: %v", err)
	}
	return users, nil
}
