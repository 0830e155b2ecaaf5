package handler

import (
	"context"
	"fmt"

	"charterbot/internal/domain"
	"charterbot/internal/repository"

	"go.uber.org/zap"
)

// Messenger delivers outbound messages and clears stale inline buttons
type Messenger interface {
	SendText(chatID int64, text string) error
	SendButtons(chatID int64, text string, buttons []domain.Button) (int, error)
	ClearButtons(user *domain.User) error
}

// Authorizer validates registration credentials against the booking system
type Authorizer interface {
	Authorize(ctx context.Context, login, password string) (bool, error)
}

// outcome tells the dispatch loop what to do after one pass
type outcome int

const (
	// outcomeDone ends the turn
	outcomeDone outcome = iota
	// outcomeReplay re-runs the same update from the top, so an event that
	// completed registration is immediately serviced under normal routing
	outcomeReplay
)

// Dispatcher is the entry point for inbound updates: it opens one unit of
// work per pass, resolves the sender to a user record, drives registration
// for unauthenticated users and routes everyone else by access level.
type Dispatcher struct {
	store       repository.UserStore
	messenger   Messenger
	auth        Authorizer
	admin       RoleHandler
	manager     RoleHandler
	captain     RoleHandler
	maxAttempts int
	logger      *zap.Logger
}

// NewDispatcher creates a dispatcher over the given collaborators.
// maxAttempts caps consecutive failed registration attempts.
func NewDispatcher(
	store repository.UserStore,
	messenger Messenger,
	auth Authorizer,
	admin, manager, captain RoleHandler,
	maxAttempts int,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		store:       store,
		messenger:   messenger,
		auth:        auth,
		admin:       admin,
		manager:     manager,
		captain:     captain,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// HandleUpdate services one inbound update. A successful registration
// triggers exactly one replay pass; everything else finishes in one.
func (d *Dispatcher) HandleUpdate(ctx context.Context, upd domain.Update) error {
	if upd.SenderID == 0 {
		// Not one of the two shapes the bot services
		return nil
	}

	for pass := 0; pass < 2; pass++ {
		out, err := d.process(ctx, upd)
		if err != nil {
			return err
		}
		if out != outcomeReplay {
			break
		}
	}
	return nil
}

// process runs one pass over the update inside its own unit of work
func (d *Dispatcher) process(ctx context.Context, upd domain.Update) (outcome, error) {
	tx, err := d.store.Begin(ctx)
	if err != nil {
		return outcomeDone, fmt.Errorf("open unit of work: %w", err)
	}
	defer tx.Rollback()

	user, err := tx.GetByID(ctx, upd.SenderID)
	if err != nil {
		return outcomeDone, err
	}

	// Buttons from a previous turn must stop being actionable
	if err := d.messenger.ClearButtons(user); err != nil {
		d.logger.Warn("Failed to clear stale buttons",
			zap.Int64("user_id", upd.SenderID),
			zap.Error(err),
		)
	}

	user, proceed, out, err := d.resolveIdentity(ctx, tx, user, upd)
	if err != nil {
		return outcomeDone, err
	}

	if proceed {
		if err := d.route(ctx, tx, user, upd); err != nil {
			return outcomeDone, err
		}
	}

	if err := tx.Save(ctx, user); err != nil {
		return outcomeDone, err
	}
	if err := tx.Commit(); err != nil {
		return outcomeDone, fmt.Errorf("commit unit of work: %w", err)
	}
	return out, nil
}

// resolveIdentity maps the sender to a user record. It reports proceed=false
// when the update was fully consumed here (first contact or mid-registration).
func (d *Dispatcher) resolveIdentity(ctx context.Context, tx repository.UserTx, user *domain.User, upd domain.Update) (*domain.User, bool, outcome, error) {
	if user == nil {
		created, err := tx.Create(ctx, upd.SenderID, upd.ChatID, upd.Username, upd.FirstName)
		if err != nil {
			return nil, false, outcomeDone, err
		}
		d.logger.Info("New user registered",
			zap.Int64("user_id", created.ID),
			zap.String("username", created.Username),
		)
		if err := d.messenger.SendText(created.ChatID, msgRegistrationGreeting); err != nil {
			return nil, false, outcomeDone, err
		}
		out, err := d.runRegistration(ctx, created, upd)
		return created, false, out, err
	}

	if user.InRegistration() {
		out, err := d.runRegistration(ctx, user, upd)
		return user, false, out, err
	}

	if user.ChatID != upd.ChatID {
		// User moved to another chat; keep delivering there
		user.ChatID = upd.ChatID
	}
	return user, true, outcomeDone, nil
}

// route hands the update to exactly one role handler. Captain is the
// deliberate default: any access level that is not admin or manager,
// including values added later, lands on the least privileged menu.
func (d *Dispatcher) route(ctx context.Context, tx repository.UserTx, user *domain.User, upd domain.Update) error {
	switch user.Access() {
	case domain.AccessAdmin:
		return d.admin.Handle(ctx, tx, user, upd)
	case domain.AccessManager:
		return d.manager.Handle(ctx, tx, user, upd)
	default:
		return d.captain.Handle(ctx, tx, user, upd)
	}
}
