package testutil

import (
	"context"

	"charterbot/internal/domain"
	"charterbot/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock for repository.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Begin(ctx context.Context) (repository.UserTx, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.UserTx), args.Error(1)
}

// MockUserTx is a mock for repository.UserTx
type MockUserTx struct {
	mock.Mock
}

func (m *MockUserTx) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserTx) Create(ctx context.Context, id, chatID int64, username, firstName string) (*domain.User, error) {
	args := m.Called(id, chatID, username, firstName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserTx) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUserTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockMessenger is a mock for the dispatcher's Messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendText(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *MockMessenger) SendButtons(chatID int64, text string, buttons []domain.Button) (int, error) {
	args := m.Called(chatID, text, buttons)
	return args.Int(0), args.Error(1)
}

func (m *MockMessenger) ClearButtons(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockAuthorizer is a mock for the auth gateway
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, login, password string) (bool, error) {
	args := m.Called(login, password)
	return args.Bool(0), args.Error(1)
}

// MockRoleHandler is a mock for a role-scoped handler
type MockRoleHandler struct {
	mock.Mock
}

func (m *MockRoleHandler) Handle(ctx context.Context, tx repository.UserTx, user *domain.User, upd domain.Update) error {
	args := m.Called(user, upd)
	return args.Error(0)
}
