package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// requiredKeys are cleared before Load tests so the host environment does not leak in
var requiredKeys = []string{
	"BOT_TOKEN", "DB_PASSWORD", "YCLIENTS_BASE_URL", "YCLIENTS_TOKEN",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
	"YCLIENTS_TIMEOUT", "REG_MAX_ATTEMPTS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range requiredKeys {
		// t.Setenv registers restoration of the original value
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]string
		wantErr string
	}{
		{
			name:    "missing bot token",
			set:     map[string]string{},
			wantErr: "BOT_TOKEN",
		},
		{
			name: "missing db password",
			set: map[string]string{
				"BOT_TOKEN": "test_token",
			},
			wantErr: "DB_PASSWORD",
		},
		{
			name: "missing gateway base url",
			set: map[string]string{
				"BOT_TOKEN":   "test_token",
				"DB_PASSWORD": "test_db_password",
			},
			wantErr: "YCLIENTS_BASE_URL",
		},
		{
			name: "missing gateway token",
			set: map[string]string{
				"BOT_TOKEN":         "test_token",
				"DB_PASSWORD":       "test_db_password",
				"YCLIENTS_BASE_URL": "https://api.example.com",
			},
			wantErr: "YCLIENTS_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.set {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	t.Setenv("YCLIENTS_BASE_URL", "https://api.example.com")
	t.Setenv("YCLIENTS_TOKEN", "partner_token")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "charterbot", cfg.Database.Name)
	assert.Equal(t, "charterbot", cfg.Database.User)
	assert.Equal(t, "10s", cfg.YClients.Timeout.String())
	assert.Equal(t, 3, cfg.RegMaxAttempts)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	t.Setenv("YCLIENTS_BASE_URL", "https://api.example.com")
	t.Setenv("YCLIENTS_TOKEN", "partner_token")
	t.Setenv("YCLIENTS_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "YCLIENTS_TIMEOUT")

	t.Setenv("YCLIENTS_TIMEOUT", "5s")
	t.Setenv("REG_MAX_ATTEMPTS", "0")

	cfg, err = Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REG_MAX_ATTEMPTS")
}
