package routes

import (
	"log"

	"skillswap/internal/config"
	"skillswap/internal/delivery/http/handler"
	v1 "skillswap/internal/delivery/http/routes/v1"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/store"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	stores store.Stores
	cache  *cache.Redis
	logger *log.Logger
}

func NewRegistry(cfg config.Config, stores store.Stores, redis *cache.Redis, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, stores: stores, cache: redis, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	handler.NewHealthHandler(r.cache).RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.stores, r.cache)
}
