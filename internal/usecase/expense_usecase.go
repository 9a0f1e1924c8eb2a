package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/approval"
	"skillswap/internal/domain/expense"
	"skillswap/internal/store"
)

var (
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrExpenseNotEditable  = errors.New("expense not editable")
	ErrExpenseNotPending   = errors.New("expense not pending")
	ErrExpenseNotSubmitted = errors.New("expense not submitted")
	ErrOwnExpenseDecision  = errors.New("cannot decide own expense")
)

type CreateExpenseInput struct {
	Title       string
	Description string
	Amount      float64
	Category    string
}

// UpdateExpenseInput is a partial update; nil fields are not merged.
type UpdateExpenseInput struct {
	Title       *string
	Description *string
	Amount      *float64
	Category    *string
}

type ExpenseFilter struct {
	UserID int64
	Status string
}

type DecideInput struct {
	Status   string
	Comments string
}

type ExpenseUsecase interface {
	ListExpenses(ctx context.Context, requesterID int64, f ExpenseFilter) ([]expense.Expense, error)
	GetExpense(ctx context.Context, requesterID, id int64) (expense.Expense, error)
	CreateExpense(ctx context.Context, ownerID int64, in CreateExpenseInput) (expense.Expense, error)
	UpdateExpense(ctx context.Context, ownerID, id int64, in UpdateExpenseInput) (expense.Expense, error)
	DeleteExpense(ctx context.Context, ownerID, id int64) error
	Submit(ctx context.Context, ownerID, id int64) (expense.Expense, error)
	Decide(ctx context.Context, approverID, expenseID int64, in DecideInput) (approval.Approval, expense.Expense, error)
	ListApprovals(ctx context.Context, requesterID, expenseID int64) ([]approval.Approval, error)
}

type Expenses struct {
	users     store.UserStore
	expenses  store.ExpenseStore
	approvals store.ApprovalStore
}

func NewExpenseUsecase(users store.UserStore, expenses store.ExpenseStore, approvals store.ApprovalStore) *Expenses {
	return &Expenses{users: users, expenses: expenses, approvals: approvals}
}

// ListExpenses scopes regular users to their own expenses; deciders may
// filter across all owners.
func (u *Expenses) ListExpenses(ctx context.Context, requesterID int64, f ExpenseFilter) ([]expense.Expense, error) {
	requester, found, err := u.users.Get(ctx, requesterID)
	if err != nil {
		return nil, ErrInternal
	}
	if !found {
		return nil, ErrUserNotFound
	}
	if !requester.CanDecide() {
		f.UserID = requesterID
	}

	items, err := u.expenses.List(ctx, func(e expense.Expense) bool {
		if f.UserID != 0 && e.UserID != f.UserID {
			return false
		}
		return f.Status == "" || e.Status == f.Status
	})
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Expenses) GetExpense(ctx context.Context, requesterID, id int64) (expense.Expense, error) {
	e, found, err := u.expenses.Get(ctx, id)
	if err != nil {
		return expense.Expense{}, ErrInternal
	}
	if !found {
		return expense.Expense{}, ErrExpenseNotFound
	}
	if e.UserID != requesterID {
		requester, ok, err := u.users.Get(ctx, requesterID)
		if err != nil {
			return expense.Expense{}, ErrInternal
		}
		if !ok || !requester.CanDecide() {
			return expense.Expense{}, ErrForbidden
		}
	}
	return e, nil
}

func (u *Expenses) CreateExpense(ctx context.Context, ownerID int64, in CreateExpenseInput) (expense.Expense, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.Amount <= 0 {
		return expense.Expense{}, ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = expense.CategoryOther
	}
	if !expense.ValidCategory(category) {
		return expense.Expense{}, ErrInvalidInput
	}

	created, err := u.expenses.Create(ctx, expense.Expense{
		UserID:      ownerID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Category:    category,
		Status:      expense.StatusPending,
	})
	if err != nil {
		return expense.Expense{}, ErrInternal
	}
	return created, nil
}

func (u *Expenses) UpdateExpense(ctx context.Context, ownerID, id int64, in UpdateExpenseInput) (expense.Expense, error) {
	if _, err := u.ownedEditable(ctx, ownerID, id); err != nil {
		return expense.Expense{}, err
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return expense.Expense{}, ErrInvalidInput
	}
	if in.Amount != nil && *in.Amount <= 0 {
		return expense.Expense{}, ErrInvalidInput
	}
	if in.Category != nil && !expense.ValidCategory(*in.Category) {
		return expense.Expense{}, ErrInvalidInput
	}

	updated, found, err := u.expenses.Update(ctx, id, func(e expense.Expense) expense.Expense {
		if in.Title != nil {
			e.Title = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			e.Description = *in.Description
		}
		if in.Amount != nil {
			e.Amount = *in.Amount
		}
		if in.Category != nil {
			e.Category = *in.Category
		}
		return e
	})
	if err != nil {
		return expense.Expense{}, ErrInternal
	}
	if !found {
		return expense.Expense{}, ErrExpenseNotFound
	}
	return updated, nil
}

func (u *Expenses) DeleteExpense(ctx context.Context, ownerID, id int64) error {
	if _, err := u.ownedEditable(ctx, ownerID, id); err != nil {
		return err
	}
	removed, err := u.expenses.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !removed {
		return ErrExpenseNotFound
	}
	return nil
}

// Submit moves a pending expense to submitted and stamps SubmittedAt. The
// pending check is re-applied inside the merge so a concurrent submit cannot
// double-stamp.
func (u *Expenses) Submit(ctx context.Context, ownerID, id int64) (expense.Expense, error) {
	existing, found, err := u.expenses.Get(ctx, id)
	if err != nil {
		return expense.Expense{}, ErrInternal
	}
	if !found {
		return expense.Expense{}, ErrExpenseNotFound
	}
	if existing.UserID != ownerID {
		return expense.Expense{}, ErrForbidden
	}
	if existing.Status != expense.StatusPending {
		return expense.Expense{}, ErrExpenseNotPending
	}

	updated, found, err := u.expenses.Update(ctx, id, func(e expense.Expense) expense.Expense {
		if e.Status != expense.StatusPending {
			return e
		}
		now := timeNow()
		e.Status = expense.StatusSubmitted
		e.SubmittedAt = &now
		return e
	})
	if err != nil {
		return expense.Expense{}, ErrInternal
	}
	if !found {
		return expense.Expense{}, ErrExpenseNotFound
	}
	if updated.Status != expense.StatusSubmitted {
		return expense.Expense{}, ErrExpenseNotPending
	}
	return updated, nil
}

// Decide records an approval decision. The decision insert and the expense
// transition are one atomic store operation; both outcomes stamp the
// decider and decision time on the expense.
func (u *Expenses) Decide(ctx context.Context, approverID, expenseID int64, in DecideInput) (approval.Approval, expense.Expense, error) {
	if !approval.ValidStatus(in.Status) {
		return approval.Approval{}, expense.Expense{}, ErrInvalidInput
	}

	approver, found, err := u.users.Get(ctx, approverID)
	if err != nil {
		return approval.Approval{}, expense.Expense{}, ErrInternal
	}
	if !found {
		return approval.Approval{}, expense.Expense{}, ErrUserNotFound
	}
	if !approver.CanDecide() {
		return approval.Approval{}, expense.Expense{}, ErrForbidden
	}

	target, found, err := u.expenses.Get(ctx, expenseID)
	if err != nil {
		return approval.Approval{}, expense.Expense{}, ErrInternal
	}
	if !found {
		return approval.Approval{}, expense.Expense{}, ErrExpenseNotFound
	}
	if target.UserID == approverID {
		return approval.Approval{}, expense.Expense{}, ErrOwnExpenseDecision
	}

	a, e, err := u.approvals.Record(ctx, approval.Approval{
		ExpenseID:  expenseID,
		ApproverID: approverID,
		Status:     in.Status,
		Comments:   strings.TrimSpace(in.Comments),
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrExpenseNotFound):
			return approval.Approval{}, expense.Expense{}, ErrExpenseNotFound
		case errors.Is(err, store.ErrExpenseNotSubmitted):
			return approval.Approval{}, expense.Expense{}, ErrExpenseNotSubmitted
		default:
			return approval.Approval{}, expense.Expense{}, ErrInternal
		}
	}
	return a, e, nil
}

func (u *Expenses) ListApprovals(ctx context.Context, requesterID, expenseID int64) ([]approval.Approval, error) {
	if _, err := u.GetExpense(ctx, requesterID, expenseID); err != nil {
		return nil, err
	}
	items, err := u.approvals.List(ctx, func(a approval.Approval) bool { return a.ExpenseID == expenseID })
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Expenses) ownedEditable(ctx context.Context, ownerID, id int64) (expense.Expense, error) {
	e, found, err := u.expenses.Get(ctx, id)
	if err != nil {
		return expense.Expense{}, ErrInternal
	}
	if !found {
		return expense.Expense{}, ErrExpenseNotFound
	}
	if e.UserID != ownerID {
		return expense.Expense{}, ErrForbidden
	}
	if !expense.Editable(e.Status) {
		return expense.Expense{}, ErrExpenseNotEditable
	}
	return e, nil
}
