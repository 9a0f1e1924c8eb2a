// Package v1 wires the versioned API surface: it builds the usecases from the
// store bundle and attaches every handler under /api/v1.
package v1

import (
	"skillswap/internal/config"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/store"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, stores store.Stores, sugCache usecase.SuggestionCache) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	authUC := usecase.NewAuthUsecase(stores.Users, jwtSvc)
	userUC := usecase.NewUserUsecase(stores.Users)
	skillUC := usecase.NewSkillUsecase(stores.Skills, sugCache)
	matchUC := usecase.NewMatchUsecase(stores.Users, stores.Skills, stores.Matches, sugCache)
	matchingUC := usecase.NewMatchingUsecase(stores.Users, stores.Skills, stores.Matches, sugCache)
	messageUC := usecase.NewMessageUsecase(stores.Matches, stores.Messages)
	expenseUC := usecase.NewExpenseUsecase(stores.Users, stores.Expenses, stores.Approvals)
	teamUC := usecase.NewTeamUsecase(stores.Users, stores.Teams, stores.Members)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	usersGroup := protected.Group("/users")
	handler.NewUserHandler(userUC).RegisterRoutes(usersGroup)

	handler.NewSkillHandler(skillUC).RegisterRoutes(protected)
	handler.NewMatchHandler(matchUC, matchingUC).RegisterRoutes(protected)
	handler.NewMessageHandler(messageUC).RegisterRoutes(protected)
	handler.NewExpenseHandler(expenseUC).RegisterRoutes(protected)
	handler.NewTeamHandler(teamUC).RegisterRoutes(protected)
}
