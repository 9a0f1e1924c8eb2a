package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type addSkillRequest struct {
	Name        string `json:"name"`
	Direction   string `json:"direction"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

type updateSkillRequest struct {
	Name        *string `json:"name"`
	Level       *string `json:"level"`
	Description *string `json:"description"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), userID)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkills(items))
}

func (h *SkillHandler) Add(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req addSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddSkill(c.Context(), userID, usecase.AddSkillInput{
		Name:        req.Name,
		Direction:   req.Direction,
		Level:       req.Level,
		Description: req.Description,
	})
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromSkill(created))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), userID, id, usecase.UpdateSkillInput{
		Name:        req.Name,
		Level:       req.Level,
		Description: req.Description,
	})
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkill(updated))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSkill(c.Context(), userID, id); err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapSkillUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidDirection):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill direction", nil, err)
	case errors.Is(err, usecase.ErrInvalidLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
