package api

import (
	"os"
	"strconv"
)

// Config holds all configuration for the backend, identity-provider, and
// document-store clients.
type Config struct {
	BaseURL     string
	AuthURL     string
	DocstoreURL string
	TimeoutMs   int
	MaxRetries  int
	LogCalls    bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "https://fleet.example.com",
		AuthURL:     "https://auth.fleet.example.com",
		DocstoreURL: "https://docs.fleet.example.com",
		TimeoutMs:   15000,
		MaxRetries:  1,
	}
}

// LoadConfig reads client configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DRIVERLOG_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("DRIVERLOG_AUTH_URL"); v != "" {
		cfg.AuthURL = v
	}
	if v := os.Getenv("DRIVERLOG_DOCSTORE_URL"); v != "" {
		cfg.DocstoreURL = v
	}
	if v := os.Getenv("DRIVERLOG_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DRIVERLOG_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("DRIVERLOG_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
