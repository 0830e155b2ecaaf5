package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"charterbot/internal/domain"
	"charterbot/internal/repository"
)

// UserStore implements repository.UserStore on PostgreSQL
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new user store
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Begin opens a transaction scoped to one inbound update
func (s *UserStore) Begin(ctx context.Context) (repository.UserTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin user tx: %w", err)
	}
	return &userTx{tx: tx}, nil
}

type userTx struct {
	tx *sql.Tx
}

// GetByID returns the user for a Telegram identity, or nil if unseen
func (t *userTx) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT user_id, chat_id, username, first_name, login, password,
		       action, step, auth_failures, last_msg_id, created_at
		FROM users WHERE user_id = $1
	`
	var u domain.User
	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.ChatID, &u.Username, &u.FirstName, &u.Login, &u.Password,
		&u.Action, &u.Step, &u.AuthFailures, &u.LastMsgID, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		// First contact from this identity
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}

	return &u, nil
}

// Create inserts a new user positioned at registration step 0
func (t *userTx) Create(ctx context.Context, id, chatID int64, username, firstName string) (*domain.User, error) {
	user := domain.NewUser(id, chatID, username, firstName)

	query := `
		INSERT INTO users (user_id, chat_id, username, first_name, login, password,
		                   action, step, auth_failures, last_msg_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := t.tx.ExecContext(ctx, query,
		user.ID, user.ChatID, user.Username, user.FirstName, user.Login, user.Password,
		user.Action, user.Step, user.AuthFailures, user.LastMsgID, user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create user %d: %w", id, err)
	}

	return user, nil
}

// Save writes back every mutable column. Action and step go out in the
// same statement so the cursor is never persisted half-updated.
func (t *userTx) Save(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET chat_id = $2, username = $3, first_name = $4, login = $5, password = $6,
		    action = $7, step = $8, auth_failures = $9, last_msg_id = $10
		WHERE user_id = $1
	`
	_, err := t.tx.ExecContext(ctx, query,
		user.ID, user.ChatID, user.Username, user.FirstName, user.Login, user.Password,
		user.Action, user.Step, user.AuthFailures, user.LastMsgID,
	)
	if err != nil {
		return fmt.Errorf("save user %d: %w", user.ID, err)
	}
	return nil
}

// Commit finishes the unit of work
func (t *userTx) Commit() error {
	return t.tx.Commit()
}

// Rollback discards the unit of work; safe to defer after Commit
func (t *userTx) Rollback() error {
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}
