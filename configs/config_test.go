package configs

import (
	"testing"

	"github.com/spf13/viper"
)

func TestInitViperLoadsDefaults(t *testing.T) {
	InitViper(".", "")
	cfg := GetViper()

	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("api.base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 60 {
		t.Errorf("api.timeout = %d, want 60", cfg.API.Timeout)
	}
	if cfg.Cache.TTL != 300 {
		t.Errorf("cache.ttl = %d, want 300", cfg.Cache.TTL)
	}
	if cfg.Sync.Interval != 30 {
		t.Errorf("sync.interval = %d, want 30", cfg.Sync.Interval)
	}
	if cfg.History.Limit != 20 {
		t.Errorf("history.limit = %d, want 20", cfg.History.Limit)
	}
	if cfg.App.Env != "production" {
		t.Errorf("app.env = %q, want production", cfg.App.Env)
	}
	if cfg.Session.InMemory {
		t.Error("session.in_memory should default to false")
	}
}

func TestInitViperEnvOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://feed.example.com")
	t.Setenv("SESSION_IN_MEMORY", "true")
	t.Setenv("HISTORY_LIMIT", "5")

	InitViper(".", "")
	cfg := GetViper()

	if cfg.API.BaseURL != "https://feed.example.com" {
		t.Errorf("api.base_url = %q, want the env override", cfg.API.BaseURL)
	}
	if !cfg.Session.InMemory {
		t.Error("session.in_memory env override not applied")
	}
	if cfg.History.Limit != 5 {
		t.Errorf("history.limit = %d, want 5", cfg.History.Limit)
	}
}

func TestInitViperToleratesMissingConfigFile(t *testing.T) {
	// Drop the accumulated search paths, then point at an empty dir.
	// Defaults must still apply without a config file.
	viper.Reset()
	InitViper(t.TempDir(), "")
	cfg := GetViper()

	if cfg.API.BaseURL == "" {
		t.Error("defaults must apply without a config file")
	}
	if cfg.Cache.TTL != 300 {
		t.Errorf("cache.ttl = %d, want the default", cfg.Cache.TTL)
	}
}
