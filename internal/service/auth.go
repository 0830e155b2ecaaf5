package service

import (
	"context"
	"errors"

	"charterbot/internal/yclients"
)

// Authorizer validates a login/password pair against the booking system
type Authorizer interface {
	Authorize(ctx context.Context, login, password string) (bool, error)
}

// AuthService handles credential checks during registration
type AuthService struct {
	gateway Authorizer
}

// NewAuthService creates a new auth service
func NewAuthService(gateway Authorizer) *AuthService {
	return &AuthService{gateway: gateway}
}

// Authorize delegates to the external gateway
func (s *AuthService) Authorize(ctx context.Context, login, password string) (bool, error) {
	return s.gateway.Authorize(ctx, login, password)
}

// IsUnavailable reports whether the error is a gateway outage rather
// than a credential rejection
func IsUnavailable(err error) bool {
	return errors.Is(err, yclients.ErrUnavailable)
}
