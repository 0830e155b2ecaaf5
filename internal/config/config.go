package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken       string
	Database       DatabaseConfig
	YClients       YClientsConfig
	RegMaxAttempts int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// YClientsConfig holds the auth gateway settings
type YClientsConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("YCLIENTS_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid YCLIENTS_TIMEOUT: %w", err)
	}

	maxAttempts, err := strconv.Atoi(getEnv("REG_MAX_ATTEMPTS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid REG_MAX_ATTEMPTS: %w", err)
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "charterbot"),
			User:     getEnv("DB_USER", "charterbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		YClients: YClientsConfig{
			BaseURL: os.Getenv("YCLIENTS_BASE_URL"),
			Token:   os.Getenv("YCLIENTS_TOKEN"),
			Timeout: timeout,
		},
		RegMaxAttempts: maxAttempts,
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.YClients.BaseURL == "" {
		return nil, fmt.Errorf("YCLIENTS_BASE_URL is required")
	}
	if cfg.YClients.Token == "" {
		return nil, fmt.Errorf("YCLIENTS_TOKEN is required")
	}
	if cfg.RegMaxAttempts < 1 {
		return nil, fmt.Errorf("REG_MAX_ATTEMPTS must be at least 1")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
