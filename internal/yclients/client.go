package yclients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable marks gateway outages so callers can tell them apart
// from rejected credentials
var ErrUnavailable = errors.New("yclients: gateway unavailable")

// Client talks to the charter company's YClients booking API.
// The bot only needs the credential check.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates an API client with the partner token and request timeout
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Authorize validates a login/password pair against the booking system.
// A definite yes/no comes back as (bool, nil); transport failures and
// unexpected statuses come back wrapped in ErrUnavailable.
func (c *Client) Authorize(ctx context.Context, login, password string) (bool, error) {
	body, err := json.Marshal(authRequest{Login: login, Password: password})
	if err != nil {
		return false, fmt.Errorf("marshal auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return true, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}
}
