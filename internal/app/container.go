package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/database/migration"
	dbpostgres "skillswap/internal/database/postgres"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/store"
	"skillswap/internal/store/memory"
	"skillswap/internal/store/postgres"
)

// Container owns the process-wide dependencies: the store bundle for the
// configured backend, the suggestion cache, and the DB pool when postgres
// is selected.
type Container struct {
	Config config.Config
	Stores store.Stores
	Cache  *cache.Redis
	DB     database.DB
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	c := &Container{
		Config: cfg,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}

	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		c.Stores = memory.NewStores()
	case config.StoreBackendPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := migration.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		c.DB = db
		c.Stores = postgres.NewStores(db)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
