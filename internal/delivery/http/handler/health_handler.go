package handler

import (
	"context"

	"skillswap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cache pinger
}

// NewHealthHandler accepts a nil cache; the probe then reports cache "off".
func NewHealthHandler(cache pinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	cacheState := "off"
	if h.cache != nil {
		cacheState = "up"
		if err := h.cache.Ping(c.Context()); err != nil {
			cacheState = "down"
		}
	}

	data := map[string]any{
		"status": "up",
		"cache":  cacheState,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
