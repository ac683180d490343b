package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/alphalearn/pkg/models"
)

// Telegram delivers the daily word list to users who registered a chat id
type Telegram struct {
	api *tgbotapi.BotAPI
}

// New creates a Telegram notifier
func New(token string) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %v", err)
	}
	return &Telegram{api: api}, nil
}

// SendDailySet sends the date's A-Z list with a short progress line
func (t *Telegram) SendDailySet(chatID int64, date string, words []models.DailyWord, learnedCount int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 Your words for %s\n\n", date)
	for _, w := range words {
		fmt.Fprintf(&b, "%s — *%s*: %s\n", w.Letter, w.Word, w.Definition)
	}
	fmt.Fprintf(&b, "\nWords learned so far: %d", learnedCount)

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send daily set to chat %d: %v", chatID, err)
	}
	return nil
}
