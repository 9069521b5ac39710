package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable.
func ValidateConfig(cfg *Config) error {
	var errors []string

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("base URL %q is not an absolute http(s) URL", cfg.BaseURL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("base URL scheme %q is not supported", u.Scheme))
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, "request timeout must be positive")
	}

	if cfg.ServerPort == "" {
		errors = append(errors, "server port must not be empty")
	}

	if len(errors) > 0 {
		return ValidationError{
			Field:   "config",
			Message: strings.Join(errors, "; "),
		}
	}

	return nil
}
