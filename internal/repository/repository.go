package repository

import (
	"context"

	"charterbot/internal/domain"
)

// UserStore opens per-update units of work against the user table
type UserStore interface {
	Begin(ctx context.Context) (UserTx, error)
}

// UserTx is one update's transactional scope. The dispatcher threads it
// explicitly through every call that touches persistence; Rollback after
// a successful Commit is a no-op so it can be deferred unconditionally.
type UserTx interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, id, chatID int64, username, firstName string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Commit() error
	Rollback() error
}
