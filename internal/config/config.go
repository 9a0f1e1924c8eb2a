package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// StoreConfig selects the entity-store backend.
type StoreConfig struct {
	Backend string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variable")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Store = StoreConfig{
		Backend: opt("STORE_BACKEND", StoreBackendMemory),
	}
	if cfg.Store.Backend != StoreBackendMemory && cfg.Store.Backend != StoreBackendPostgres {
		return Config{}, fmt.Errorf("%w: STORE_BACKEND=%q", errInvalidEnv, cfg.Store.Backend)
	}

	cfg.Database = DatabaseConfig{
		Host:     opt("DB_HOST", ""),
		Port:     opt("DB_PORT", ""),
		Name:     opt("DB_NAME", ""),
		User:     opt("DB_USER", ""),
		Password: os.Getenv("DB_PASSWORD"),
		SSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout: durationEnv("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32Env("DB_POOL_MAX_CONNS", 0),
		PoolMinConns:   int32Env("DB_POOL_MIN_CONNS", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      durationEnv("REDIS_TTL", 5*time.Minute),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationEnv("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: durationEnv("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func int32Env(key string, def int32) int32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return def
	}
	return int32(n)
}
