package handler

import (
	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MessageHandler struct {
	uc usecase.MessageUsecase
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/matches/:id/messages")
	grp.Get("/", h.List)
	grp.Post("/", h.Send)
}

func (h *MessageHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	matchID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListMessages(c.Context(), userID, matchID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMessages(items))
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	matchID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sent, err := h.uc.SendMessage(c.Context(), userID, matchID, req.Content)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromMessage(sent))
}
