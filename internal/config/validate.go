package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Environment != EnvLive && c.Environment != EnvDemo {
		return fmt.Errorf("environment must be %q or %q, got %q", EnvLive, EnvDemo, c.Environment)
	}

	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}

	if c.Credentials.Email == "" {
		return errors.New("credentials.email is required")
	}
	if c.Credentials.Password == "" {
		return errors.New("credentials.password is required")
	}

	if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
	}

	return nil
}
