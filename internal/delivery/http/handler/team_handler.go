package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TeamHandler struct {
	uc usecase.TeamUsecase
}

type createTeamRequest struct {
	Name string `json:"name"`
}

type addMemberRequest struct {
	UserID int64 `json:"user_id"`
}

func NewTeamHandler(uc usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

func (h *TeamHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/teams")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id/members", h.ListMembers)
	grp.Post("/:id/members", h.AddMember)
	grp.Delete("/:id/members/:userId", h.RemoveMember)
}

func (h *TeamHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListTeams(c.Context())
	if err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTeams(items))
}

func (h *TeamHandler) Create(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createTeamRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateTeam(c.Context(), userID, req.Name)
	if err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromTeam(created))
}

func (h *TeamHandler) ListMembers(c fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListMembers(c.Context(), teamID)
	if err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromTeamMembers(items))
}

func (h *TeamHandler) AddMember(c fiber.Ctx) error {
	requesterID, err := currentUserID(c)
	if err != nil {
		return err
	}

	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req addMemberRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	member, err := h.uc.AddMember(c.Context(), requesterID, teamID, req.UserID)
	if err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromTeamMember(member))
}

func (h *TeamHandler) RemoveMember(c fiber.Ctx) error {
	requesterID, err := currentUserID(c)
	if err != nil {
		return err
	}

	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveMember(c.Context(), requesterID, teamID, userID); err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapTeamUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrTeamNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Team not found", nil, err)
	case errors.Is(err, usecase.ErrMemberNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Team member not found", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyMember):
		return middleware.NewAppError(fiber.StatusConflict, "User already a team member", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
