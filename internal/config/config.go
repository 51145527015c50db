// Package config loads and validates client configuration from YAML files
// with environment variable expansion.
package config

import "time"

// Environments selectable via the environment field.
const (
	EnvLive = "live"
	EnvDemo = "demo"
)

// Config is the root configuration for a client instance.
type Config struct {
	Environment string            `yaml:"environment"` // "live" or "demo"
	API         APIConfig         `yaml:"api"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// APIConfig holds Kalshi API settings.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"` // overrides the environment default
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// CredentialsConfig holds login credentials. Values are normally supplied via
// ${KALSHI_EMAIL} / ${KALSHI_PASSWORD} expansion rather than stored in the file.
type CredentialsConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
