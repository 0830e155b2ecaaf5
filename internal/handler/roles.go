package handler

import (
	"context"

	"charterbot/internal/domain"
	"charterbot/internal/repository"

	"go.uber.org/zap"
)

// RoleHandler services updates for authenticated users of one role.
// The three handlers are constructed side by side and share nothing
// but the messenger and the unit of work they are handed.
type RoleHandler interface {
	Handle(ctx context.Context, tx repository.UserTx, user *domain.User, upd domain.Update) error
}

// AdminHandler owns the fleet administration menu
type AdminHandler struct {
	messenger Messenger
	logger    *zap.Logger
}

// NewAdminHandler creates the administrator role handler
func NewAdminHandler(messenger Messenger, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{messenger: messenger, logger: logger}
}

func (h *AdminHandler) Handle(ctx context.Context, tx repository.UserTx, user *domain.User, upd domain.Update) error {
	h.logger.Debug("Admin update",
		zap.Int64("user_id", user.ID),
		zap.Bool("callback", upd.IsCallback),
	)
	return sendMenu(h.messenger, user, msgAdminMenu, []domain.Button{
		{Text: "Fleet", Data: "admin_fleet"},
		{Text: "Crew", Data: "admin_crew"},
		{Text: "Reports", Data: "admin_reports"},
	})
}

// ManagerHandler owns the charter management menu
type ManagerHandler struct {
	messenger Messenger
	logger    *zap.Logger
}

// NewManagerHandler creates the manager role handler
func NewManagerHandler(messenger Messenger, logger *zap.Logger) *ManagerHandler {
	return &ManagerHandler{messenger: messenger, logger: logger}
}

func (h *ManagerHandler) Handle(ctx context.Context, tx repository.UserTx, user *domain.User, upd domain.Update) error {
	h.logger.Debug("Manager update",
		zap.Int64("user_id", user.ID),
		zap.Bool("callback", upd.IsCallback),
	)
	return sendMenu(h.messenger, user, msgManagerMenu, []domain.Button{
		{Text: "New booking", Data: "manager_book"},
		{Text: "Schedule", Data: "manager_schedule"},
	})
}

// CaptainHandler owns the captain menu and is the default routing target
type CaptainHandler struct {
	messenger Messenger
	logger    *zap.Logger
}

// NewCaptainHandler creates the captain role handler
func NewCaptainHandler(messenger Messenger, logger *zap.Logger) *CaptainHandler {
	return &CaptainHandler{messenger: messenger, logger: logger}
}

func (h *CaptainHandler) Handle(ctx context.Context, tx repository.UserTx, user *domain.User, upd domain.Update) error {
	h.logger.Debug("Captain update",
		zap.Int64("user_id", user.ID),
		zap.Bool("callback", upd.IsCallback),
	)
	return sendMenu(h.messenger, user, msgCaptainMenu, []domain.Button{
		{Text: "Log a trip", Data: "captain_trip"},
		{Text: "My schedule", Data: "captain_schedule"},
	})
}

// sendMenu delivers a role menu and records the message id so its
// buttons can be cleared on the next turn
func sendMenu(m Messenger, user *domain.User, text string, buttons []domain.Button) error {
	msgID, err := m.SendButtons(user.ChatID, text, buttons)
	if err != nil {
		return err
	}
	user.LastMsgID = msgID
	return nil
}
