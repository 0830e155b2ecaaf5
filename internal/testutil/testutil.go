package testutil

import (
	"time"

	"charterbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a user with an inactive action cursor
func NewTestUser(userID, chatID int64) *domain.User {
	return &domain.User{
		ID:        userID,
		ChatID:    chatID,
		Username:  "testuser",
		FirstName: "Test",
		Login:     "testlogin",
		Action:    domain.ActionNone,
		CreatedAt: time.Now(),
	}
}

// NewRegisteringUser creates a user parked at the given registration step
func NewRegisteringUser(userID, chatID int64, step int) *domain.User {
	u := NewTestUser(userID, chatID)
	u.Login = ""
	u.Action = domain.ActionRegistration
	u.Step = step
	return u
}
