package telegram

import (
	"strconv"
	"strings"

	"charterbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Messenger sends outbound messages through the Telegram Bot API
type Messenger struct {
	bot    *tele.Bot
	logger *zap.Logger
}

// NewMessenger creates a Telegram-backed messenger
func NewMessenger(bot *tele.Bot, logger *zap.Logger) *Messenger {
	return &Messenger{bot: bot, logger: logger}
}

// SendText delivers a plain text message to a chat
func (m *Messenger) SendText(chatID int64, text string) error {
	_, err := m.bot.Send(tele.ChatID(chatID), text)
	return err
}

// SendButtons delivers a text message with a one-column inline keyboard
// and returns the message id so stale buttons can be cleared later
func (m *Messenger) SendButtons(chatID int64, text string, buttons []domain.Button) (int, error) {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, markup.Row(markup.Data(b.Text, b.Data)))
	}
	markup.Inline(rows...)

	msg, err := m.bot.Send(tele.ChatID(chatID), text, markup)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// ClearButtons strips the inline keyboard from the user's last interactive
// message. No-op when there is nothing to clear; already-cleared messages
// are not treated as failures.
func (m *Messenger) ClearButtons(user *domain.User) error {
	if user == nil || user.LastMsgID == 0 {
		return nil
	}

	stored := tele.StoredMessage{
		MessageID: strconv.Itoa(user.LastMsgID),
		ChatID:    user.ChatID,
	}
	_, err := m.bot.EditReplyMarkup(stored, nil)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "message is not modified") ||
			strings.Contains(errStr, "message to edit not found") {
			m.logger.Debug("Buttons already cleared",
				zap.Int64("user_id", user.ID),
				zap.Int("message_id", user.LastMsgID),
			)
			err = nil
		}
	}
	if err != nil {
		return err
	}

	user.LastMsgID = 0
	return nil
}
