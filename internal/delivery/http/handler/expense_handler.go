package handler

import (
	"errors"
	"strconv"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ExpenseHandler struct {
	uc usecase.ExpenseUsecase
}

type createExpenseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

type updateExpenseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
}

type decideExpenseRequest struct {
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

type decisionResponse struct {
	Approval dto.ApprovalResponse `json:"approval"`
	Expense  dto.ExpenseResponse  `json:"expense"`
}

func NewExpenseHandler(uc usecase.ExpenseUsecase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

func (h *ExpenseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/expenses")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/submit", h.Submit)
	grp.Get("/:id/approvals", h.ListApprovals)
	grp.Post("/:id/approvals", h.Decide)
}

func (h *ExpenseHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var f usecase.ExpenseFilter
	f.Status = c.Query("status")
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		f.UserID = id
	}

	items, err := h.uc.ListExpenses(c.Context(), userID, f)
	if err != nil {
		return mapExpenseUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromExpenses(items))
}

func (h *ExpenseHandler) Get(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	exp, err := h.uc.GetExpense(c.Context(), userID, id)
	if err != nil {
		return mapExpenseUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromExpense(exp))
}

func (h *ExpenseHandler) Create(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createExpenseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateExpense(c.Context(), userID, usecase.CreateExpenseInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
	})
	if err != nil {
		return mapExpenseUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromExpense(created))
}

func (h *ExpenseHandler) Update(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateExpenseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateExpense(c.Context(), userID, id, usecase.UpdateExpenseInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
	})
	if err != nil {
		return mapExpenseUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromExpense(updated))
}

func (h *ExpenseHandler) Delete(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteExpense(c.Context(), userID, id); err != nil {
		return mapExpenseUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ExpenseHandler) Submit(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	exp, err := h.uc.Submit(c.Context(), userID, id)
	if err != nil {
		return mapExpenseUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromExpense(exp))
}

func (h *ExpenseHandler) Decide(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req decideExpenseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	apv, exp, err := h.uc.Decide(c.Context(), userID, id, usecase.DecideInput{
		Status:   req.Status,
		Comments: req.Comments,
	})
	if err != nil {
		return mapExpenseUsecaseError(err)
	}

	res := decisionResponse{Approval: dto.FromApproval(apv), Expense: dto.FromExpense(exp)}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, res)
}

func (h *ExpenseHandler) ListApprovals(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListApprovals(c.Context(), userID, id)
	if err != nil {
		return mapExpenseUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApprovals(items))
}

func mapExpenseUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Expense not found", nil, err)
	case errors.Is(err, usecase.ErrExpenseNotEditable):
		return middleware.NewAppError(fiber.StatusConflict, "Expense is no longer editable", nil, err)
	case errors.Is(err, usecase.ErrExpenseNotPending):
		return middleware.NewAppError(fiber.StatusConflict, "Expense already submitted", nil, err)
	case errors.Is(err, usecase.ErrExpenseNotSubmitted):
		return middleware.NewAppError(fiber.StatusConflict, "Expense is not awaiting a decision", nil, err)
	case errors.Is(err, usecase.ErrOwnExpenseDecision):
		return middleware.NewAppError(fiber.StatusForbidden, "Cannot decide own expense", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
