package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc       usecase.MatchUsecase
	matching usecase.MatchingUsecase
}

type requestMatchRequest struct {
	TeacherID int64 `json:"teacher_id"`
	SkillID   int64 `json:"skill_id"`
}

type updateMatchStatusRequest struct {
	Status string `json:"status"`
}

func NewMatchHandler(uc usecase.MatchUsecase, matching usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc, matching: matching}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/matches")
	grp.Get("/suggestions", h.Suggestions)
	grp.Get("/", h.List)
	grp.Post("/", h.Request)
	grp.Put("/:id/status", h.UpdateStatus)
}

func (h *MatchHandler) Suggestions(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.matching.Suggest(c.Context(), userID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	res := make([]dto.SuggestionResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.SuggestionResponse{
			Teacher:       dto.FromUser(it.Teacher),
			Skill:         dto.FromSkill(it.Skill),
			LearningSkill: dto.FromSkill(it.LearningSkill),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MatchHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListMine(c.Context(), userID, c.Query("status"))
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatches(items))
}

func (h *MatchHandler) Request(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req requestMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Request(c.Context(), userID, usecase.RequestMatchInput{
		TeacherID: req.TeacherID,
		SkillID:   req.SkillID,
	})
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromMatch(created))
}

func (h *MatchHandler) UpdateStatus(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateMatchStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), userID, id, req.Status)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatch(updated))
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyMatched):
		return middleware.NewAppError(fiber.StatusConflict, "Users already matched", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status transition", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
