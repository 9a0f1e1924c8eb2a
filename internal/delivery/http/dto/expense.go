package dto

import (
	"time"

	"skillswap/internal/domain/approval"
	"skillswap/internal/domain/expense"
)

type ExpenseResponse struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ApprovedBy  *int64     `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromExpense(e expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Status:      e.Status,
		SubmittedAt: e.SubmittedAt,
		ApprovedBy:  e.ApprovedBy,
		ApprovedAt:  e.ApprovedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromExpenses(expenses []expense.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}

type ApprovalResponse struct {
	ID         int64     `json:"id"`
	ExpenseID  int64     `json:"expense_id"`
	ApproverID int64     `json:"approver_id"`
	Status     string    `json:"status"`
	Comments   string    `json:"comments,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromApproval(a approval.Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:         a.ID,
		ExpenseID:  a.ExpenseID,
		ApproverID: a.ApproverID,
		Status:     a.Status,
		Comments:   a.Comments,
		CreatedAt:  a.CreatedAt,
	}
}

func FromApprovals(approvals []approval.Approval) []ApprovalResponse {
	out := make([]ApprovalResponse, 0, len(approvals))
	for _, a := range approvals {
		out = append(out, FromApproval(a))
	}
	return out
}
