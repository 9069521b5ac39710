package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultBaseURL        = "http://localhost:8001"
	DefaultRequestTimeout = 15 * time.Second
	DefaultServerPort     = "8001"
)

// Config holds all configuration for the client and the mock API server.
type Config struct {
	// Client configuration
	BaseURL        string
	RequestTimeout time.Duration
	SessionPath    string

	// Mock server configuration
	ServerPort string
	JWTSecret  string
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to defaults suitable for local development.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		BaseURL:        getEnv("RECIPENEST_BASE_URL", DefaultBaseURL),
		RequestTimeout: DefaultRequestTimeout,
		SessionPath:    os.Getenv("RECIPENEST_SESSION_FILE"),
		ServerPort:     getEnv("SERVER_PORT", DefaultServerPort),
		JWTSecret:      os.Getenv("JWT_SECRET"),
	}

	if raw := os.Getenv("RECIPENEST_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RECIPENEST_TIMEOUT_SECONDS %q: %w", raw, err)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}

	// Production refuses to run with a guessable signing key; everywhere
	// else a fixed development secret keeps the mock server usable out of
	// the box.
	if cfg.JWTSecret == "" {
		if IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "recipenest-dev-secret"
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
