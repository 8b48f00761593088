// Package config loads server settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mmynk/invoiceforge/internal/money"
	"github.com/mmynk/invoiceforge/internal/storage/memory"
)

// Config holds the server settings.
type Config struct {
	// Port is the TCP port to listen on (PORT, default 8080).
	Port int

	// StaticPath is the directory of frontend files (STATIC_PATH).
	StaticPath string

	// SessionTTL is how long an idle draft is kept (SESSION_TTL, Go duration).
	SessionTTL time.Duration

	// RoundingMode controls display rounding (ROUNDING_MODE).
	RoundingMode money.RoundingMode
}

// Defaults for unset variables.
const (
	DefaultPort       = 8080
	DefaultStaticPath = "../frontend/static"
)

// Load reads the configuration through getenv, typically os.Getenv.
// Unset variables take their defaults; malformed values are an error.
func Load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:         DefaultPort,
		StaticPath:   DefaultStaticPath,
		SessionTTL:   memory.DefaultTTL,
		RoundingMode: money.HalfUp,
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q: must be 1-65535", v)
		}
		cfg.Port = port
	}

	if v := getenv("STATIC_PATH"); v != "" {
		cfg.StaticPath = v
	}

	if v := getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: must be positive", v)
		}
		cfg.SessionTTL = ttl
	}

	if v := getenv("ROUNDING_MODE"); v != "" {
		mode, err := money.ParseRoundingMode(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ROUNDING_MODE: %w", err)
		}
		cfg.RoundingMode = mode
	}

	return cfg, nil
}

// FromEnv loads the configuration from the process environment.
func FromEnv() (*Config, error) {
	return Load(os.Getenv)
}

// Addr returns the listen address, e.g. ":8080".
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SweepInterval is how often expired drafts are swept.
func (c *Config) SweepInterval() time.Duration {
	interval := c.SessionTTL / 4
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}
