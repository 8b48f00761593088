package config

import (
	"testing"
	"time"

	"github.com/mmynk/invoiceforge/internal/money"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(envFrom(nil))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 || cfg.Addr() != ":8080" {
		t.Errorf("Port = %d, Addr = %q", cfg.Port, cfg.Addr())
	}
	if cfg.StaticPath != DefaultStaticPath {
		t.Errorf("StaticPath = %q", cfg.StaticPath)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL = %v, want 2h", cfg.SessionTTL)
	}
	if cfg.RoundingMode != money.HalfUp {
		t.Errorf("RoundingMode = %q, want half-up", cfg.RoundingMode)
	}
	if cfg.SweepInterval() != 30*time.Minute {
		t.Errorf("SweepInterval = %v, want 30m", cfg.SweepInterval())
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		"PORT":          "9090",
		"STATIC_PATH":   "/srv/static",
		"SESSION_TTL":   "2s",
		"ROUNDING_MODE": "half-even",
	}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr())
	}
	if cfg.StaticPath != "/srv/static" {
		t.Errorf("StaticPath = %q", cfg.StaticPath)
	}
	if cfg.SessionTTL != 2*time.Second {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.RoundingMode != money.HalfEven {
		t.Errorf("RoundingMode = %q", cfg.RoundingMode)
	}
	if cfg.SweepInterval() != time.Second {
		t.Errorf("SweepInterval = %v, want 1s floor", cfg.SweepInterval())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port not a number", env: map[string]string{"PORT": "http"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "ttl not a duration", env: map[string]string{"SESSION_TTL": "forever"}},
		{name: "ttl negative", env: map[string]string{"SESSION_TTL": "-1h"}},
		{name: "unknown rounding", env: map[string]string{"ROUNDING_MODE": "truncate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(envFrom(tt.env)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
