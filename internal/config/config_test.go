package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.ServerPort == "" {
		t.Fatalf("expected default server port")
	}
	if cfg.PostgresURL == "" {
		t.Fatalf("expected default postgres url")
	}
	if !cfg.AutoMigrate {
		t.Fatalf("expected auto migrate by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9000")
	t.Setenv("POSTGRES_URL", "postgres://example")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg := Load()
	if cfg.ServerPort != ":9000" {
		t.Fatalf("expected override port")
	}
	if cfg.PostgresURL != "postgres://example" {
		t.Fatalf("expected override postgres")
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("expected override redis")
	}
	if cfg.RedisPassword != "secret" {
		t.Fatalf("expected override redis password")
	}
	if cfg.AutoMigrate {
		t.Fatalf("expected auto migrate disabled")
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city-guide.env")
	if err := os.WriteFile(path, []byte("REDIS_ADDR=cache:6380\nSERVER_PORT=:7000\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	old := envFile
	envFile = path
	defer func() { envFile = old }()

	// explicit environment beats the file
	t.Setenv("SERVER_PORT", ":9100")
	os.Unsetenv("REDIS_ADDR")
	t.Cleanup(func() { os.Unsetenv("REDIS_ADDR") })

	cfg := Load()
	if cfg.RedisAddr != "cache:6380" {
		t.Fatalf("expected redis addr from file, got %q", cfg.RedisAddr)
	}
	if cfg.ServerPort != ":9100" {
		t.Fatalf("expected env to win, got %q", cfg.ServerPort)
	}
}
