package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
server:
  addr: ":9090"
football:
  api_key: file-key
  timezone: Europe/Moscow
  timeout: 5s
  max_retries: 2
redis:
  enabled: true
  addr: redis:6379
postgres:
  dsn: postgres://localhost/betbrief
telegram:
  allowed_chats: [1, 2]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Server.Addr != ":9090" {
		t.Errorf("unexpected logging/server: %+v %+v", cfg.Logging, cfg.Server)
	}
	if cfg.Football.APIKey != "file-key" || cfg.Football.Timeout != 5*time.Second || cfg.Football.MaxRetries != 2 {
		t.Errorf("unexpected football: %+v", cfg.Football)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis:6379" || cfg.Redis.Prefix != "betbrief:" {
		t.Errorf("unexpected redis: %+v", cfg.Redis)
	}
	if len(cfg.Telegram.AllowedChats) != 2 {
		t.Errorf("allowed chats = %v", cfg.Telegram.AllowedChats)
	}
	if cfg.Football.BaseURL != "https://v3.football.api-sports.io" {
		t.Errorf("default base url not applied: %q", cfg.Football.BaseURL)
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "Europe/Moscow" {
		t.Errorf("Location() = %v, %v", loc, err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APIFOOTBALL_KEY", "env-key")
	t.Setenv("POSTGRES_DSN", "postgres://env/db")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg, err := Load(writeConfig(t, "football:\n  api_key: file-key\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Football.APIKey != "env-key" {
		t.Errorf("api key = %q, want env-key", cfg.Football.APIKey)
	}
	if cfg.Postgres.DSN != "postgres://env/db" {
		t.Errorf("dsn = %q", cfg.Postgres.DSN)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "cache:6379" {
		t.Errorf("redis = %+v, want enabled at cache:6379", cfg.Redis)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
	if _, err := Load(writeConfig(t, "server: [not, a, map]\n")); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8080" || cfg.Enricher.RequestTimeout != 30*time.Second || cfg.Chat.MaxRetries != 3 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("default location = %v, %v", loc, err)
	}

	cfg.Football.Timezone = "Nowhere/City"
	if _, err := cfg.Location(); err == nil {
		t.Error("expected error for an unknown timezone")
	}
}
