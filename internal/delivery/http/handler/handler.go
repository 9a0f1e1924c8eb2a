// Package handler holds the Fiber HTTP handlers. Each handler wraps one
// usecase, registers its own routes, and maps usecase sentinels to AppError.
package handler

import (
	"strconv"

	"skillswap/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func parseIDParam(c fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return id, nil
}

func currentUserID(c fiber.Ctx) (int64, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}
