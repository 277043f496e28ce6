package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
redis:
  addr: "redis:6379"
  db: 2
upstream:
  api_key: "secret"
rate_limit:
  default_limit: 30
logger:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Upstream.APIKey != "secret" {
		t.Errorf("Upstream.APIKey = %q", cfg.Upstream.APIKey)
	}

	// Unset values come from defaults.
	if cfg.Upstream.BaseURL != "https://v3.football.api-sports.io" {
		t.Errorf("Upstream.BaseURL = %q, want default", cfg.Upstream.BaseURL)
	}
	if cfg.RateLimit.DefaultLimit != 30 || cfg.RateLimit.ExpensiveLimit != 10 {
		t.Errorf("RateLimit = %+v, want default_limit 30, expensive_limit 10", cfg.RateLimit)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("RateLimit.Window = %v, want 1m", cfg.RateLimit.Window)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_UPSTREAM_API_KEY", "from-env")
	t.Setenv("APP_SERVER_ADDR", ":7070")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Upstream.APIKey != "from-env" {
		t.Errorf("Upstream.APIKey = %q, want from-env", cfg.Upstream.APIKey)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Server.Addr = %q, want :7070", cfg.Server.Addr)
	}
}

func TestLoad_MissingAPIKeyRejected(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("Load() error = nil, want validation failure without an API key")
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := writeConfigFile(t, `
upstream:
  api_key: "secret"
rate_limit:
  default_limit: -1
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want validation failure for negative limit")
	}
}

func TestLoad_MissingFileRejected(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("Load() error = nil, want read failure")
	}
}
