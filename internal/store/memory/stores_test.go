package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillswap/internal/domain/approval"
	"skillswap/internal/domain/expense"
	"skillswap/internal/domain/message"
	"skillswap/internal/domain/user"
	"skillswap/internal/store"
)

func TestUsers_GetByEmailCaseInsensitive(t *testing.T) {
	users := NewUsers()
	ctx := context.Background()

	created, err := users.Create(ctx, user.User{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, ok, err := users.GetByEmail(ctx, "ALICE@Example.COM")
	if err != nil || !ok {
		t.Fatalf("get by email: ok=%v err=%v", ok, err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, got.ID)
	}

	_, ok, err = users.GetByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for unknown email")
	}
}

func TestMessages_ListByMatchOrdersByTimeThenID(t *testing.T) {
	msgs := NewMessages()
	ctx := context.Background()

	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	times := []time.Time{base.Add(2 * time.Minute), base, base}
	msgs.now = func() time.Time {
		if len(times) == 0 {
			return base.Add(time.Hour)
		}
		next := times[0]
		times = times[1:]
		return next
	}

	for _, content := range []string{"late", "first", "second"} {
		if _, err := msgs.Create(ctx, message.Message{MatchID: 1, Content: content}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if _, err := msgs.Create(ctx, message.Message{MatchID: 2, Content: "other match"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := msgs.ListByMatch(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"first", "second", "late"}
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(got))
	}
	for i, m := range got {
		if m.Content != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], m.Content)
		}
	}
}

func TestApprovals_RecordTransitionsExpense(t *testing.T) {
	expenses := NewExpenses()
	approvals := NewApprovals(expenses)
	ctx := context.Background()

	created, _ := expenses.Create(ctx, expense.Expense{UserID: 1, Title: "Taxi", Amount: 20, Status: expense.StatusSubmitted})

	apv, exp, err := approvals.Record(ctx, approval.Approval{
		ExpenseID:  created.ID,
		ApproverID: 7,
		Status:     approval.StatusApproved,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if apv.ID == 0 {
		t.Fatalf("approval id not assigned")
	}
	if exp.Status != expense.StatusApproved {
		t.Fatalf("expected approved expense, got %q", exp.Status)
	}
	if exp.ApprovedBy == nil || *exp.ApprovedBy != 7 {
		t.Fatalf("expected ApprovedBy=7, got %v", exp.ApprovedBy)
	}
	if exp.ApprovedAt == nil {
		t.Fatalf("expected ApprovedAt stamp")
	}
}

func TestApprovals_RecordRejectionStampsDecider(t *testing.T) {
	expenses := NewExpenses()
	approvals := NewApprovals(expenses)
	ctx := context.Background()

	created, _ := expenses.Create(ctx, expense.Expense{UserID: 1, Title: "Hotel", Amount: 300, Status: expense.StatusSubmitted})

	_, exp, err := approvals.Record(ctx, approval.Approval{
		ExpenseID:  created.ID,
		ApproverID: 9,
		Status:     approval.StatusRejected,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if exp.Status != expense.StatusRejected {
		t.Fatalf("expected rejected expense, got %q", exp.Status)
	}
	if exp.ApprovedBy == nil || *exp.ApprovedBy != 9 {
		t.Fatalf("rejection must stamp decider, got %v", exp.ApprovedBy)
	}
}

func TestApprovals_RecordGuards(t *testing.T) {
	expenses := NewExpenses()
	approvals := NewApprovals(expenses)
	ctx := context.Background()

	pending, _ := expenses.Create(ctx, expense.Expense{UserID: 1, Status: expense.StatusPending})

	_, _, err := approvals.Record(ctx, approval.Approval{ExpenseID: pending.ID, ApproverID: 2, Status: approval.StatusApproved})
	if !errors.Is(err, store.ErrExpenseNotSubmitted) {
		t.Fatalf("expected ErrExpenseNotSubmitted, got %v", err)
	}

	_, _, err = approvals.Record(ctx, approval.Approval{ExpenseID: 999, ApproverID: 2, Status: approval.StatusApproved})
	if !errors.Is(err, store.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}

	items, err := approvals.List(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("no approval rows may exist after failed decisions, got %d", len(items))
	}
}

func TestApprovals_RecordTerminalExpenseRejected(t *testing.T) {
	expenses := NewExpenses()
	approvals := NewApprovals(expenses)
	ctx := context.Background()

	created, _ := expenses.Create(ctx, expense.Expense{UserID: 1, Status: expense.StatusSubmitted})
	if _, _, err := approvals.Record(ctx, approval.Approval{ExpenseID: created.ID, ApproverID: 2, Status: approval.StatusApproved}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, _, err := approvals.Record(ctx, approval.Approval{ExpenseID: created.ID, ApproverID: 3, Status: approval.StatusRejected})
	if !errors.Is(err, store.ErrExpenseNotSubmitted) {
		t.Fatalf("expected ErrExpenseNotSubmitted for decided expense, got %v", err)
	}
}
