package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "skillswap")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Backend != StoreBackendMemory {
		t.Fatalf("expected memory backend by default, got %q", cfg.Store.Backend)
	}
	if cfg.Redis.Host != "localhost" || cfg.Redis.Port != "6379" {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if cfg.Redis.TTL != 5*time.Minute {
		t.Fatalf("expected 5m TTL, got %v", cfg.Redis.TTL)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("expected 15m access expiry, got %v", cfg.JWT.AccessExpiresIn)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_NAME", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing APP_NAME")
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORE_BACKEND", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoad_PostgresBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DB_CONNECT_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Backend != StoreBackendPostgres {
		t.Fatalf("expected postgres backend, got %q", cfg.Store.Backend)
	}
	if cfg.Database.ConnectTimeout != 3*time.Second {
		t.Fatalf("expected 3s connect timeout, got %v", cfg.Database.ConnectTimeout)
	}
}
