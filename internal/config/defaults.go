package config

import (
	"time"

	"github.com/rickgao/kalshi-trade/kalshi"
)

// Default values for optional configuration fields.
const (
	DefaultEnvironment = EnvDemo
	DefaultAPITimeout  = 30 * time.Second
	DefaultMetricsPort = 9090
	DefaultMetricsPath = "/metrics"
)

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}

	if c.API.BaseURL == "" {
		switch c.Environment {
		case EnvLive:
			c.API.BaseURL = kalshi.LiveBaseURL
		default:
			c.API.BaseURL = kalshi.DemoBaseURL
		}
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
