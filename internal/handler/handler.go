package handler

import (
	"context"
	"strings"
	"time"
	"unicode"

	"charterbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// dispatchTimeout bounds one update's processing, auth gateway call included
const dispatchTimeout = 30 * time.Second

// Handler adapts Telegram updates to the dispatcher
type Handler struct {
	bot        *tele.Bot
	dispatcher *Dispatcher
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, dispatcher *Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		bot:        bot,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers registers the two update shapes the bot services.
// Telegram emits many other update types; none of them reach the
// dispatcher, which is the silent-drop behavior we want.
func (h *Handler) RegisterHandlers() {
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// handleText adapts a text message update
func (h *Handler) handleText(c tele.Context) error {
	sender := c.Sender()
	msg := c.Message()
	if sender == nil || msg == nil || msg.Chat == nil {
		return nil
	}

	return h.dispatch(domain.Update{
		SenderID:  sender.ID,
		ChatID:    msg.Chat.ID,
		Text:      strings.TrimSpace(msg.Text),
		Username:  sender.Username,
		FirstName: sender.FirstName,
	})
}

// handleCallback adapts a button press; the chat address comes from the
// message the button was attached to
func (h *Handler) handleCallback(c tele.Context) error {
	cb := c.Callback()
	if cb == nil || cb.Sender == nil || cb.Message == nil || cb.Message.Chat == nil {
		return nil
	}

	// Stop the client-side loading spinner regardless of the outcome
	defer func() {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}()

	return h.dispatch(domain.Update{
		SenderID:     cb.Sender.ID,
		ChatID:       cb.Message.Chat.ID,
		Username:     cb.Sender.Username,
		FirstName:    cb.Sender.FirstName,
		IsCallback:   true,
		CallbackData: cleanCallbackData(cb.Data),
	})
}

// dispatch runs the dispatcher; errors are logged, never surfaced to
// telebot as user-visible failures
func (h *Handler) dispatch(upd domain.Update) error {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	if err := h.dispatcher.HandleUpdate(ctx, upd); err != nil {
		h.logger.Error("Failed to handle update",
			zap.Int64("user_id", upd.SenderID),
			zap.Bool("callback", upd.IsCallback),
			zap.Error(err),
		)
	}
	return nil
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}
