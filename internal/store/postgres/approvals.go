package postgres

import (
	"context"

	"skillswap/internal/database"
	"skillswap/internal/domain/approval"
	"skillswap/internal/domain/expense"
	"skillswap/internal/store"
)

const approvalColumns = `id, expense_id, approver_id, status, comments, created_at`

type Approvals struct {
	db database.DB
}

func NewApprovals(db database.DB) *Approvals {
	return &Approvals{db: db}
}

func scanApproval(sc scanner) (approval.Approval, error) {
	var a approval.Approval
	err := sc.Scan(&a.ID, &a.ExpenseID, &a.ApproverID, &a.Status, &a.Comments, &a.CreatedAt)
	return a, err
}

func (r *Approvals) List(ctx context.Context, pred func(approval.Approval) bool) ([]approval.Approval, error) {
	rows, err := r.db.Query(ctx, `SELECT `+approvalColumns+` FROM approvals ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]approval.Approval, 0)
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(a) {
			out = append(out, a)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Record inserts the decision and transitions the expense inside one
// transaction; the expense row is locked first, so no reader on another
// connection can commit a conflicting decision in between.
func (r *Approvals) Record(ctx context.Context, a approval.Approval) (approval.Approval, expense.Expense, error) {
	var exp expense.Expense
	err := inTx(ctx, r.db, func(tx database.Tx) error {
		e, err := scanExpense(tx.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1 FOR UPDATE`, a.ExpenseID))
		if err != nil {
			if isNoRows(err) {
				return store.ErrExpenseNotFound
			}
			return err
		}
		if e.Status != expense.StatusSubmitted {
			return store.ErrExpenseNotSubmitted
		}

		row := tx.QueryRow(ctx,
			`INSERT INTO approvals (expense_id, approver_id, status, comments)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, created_at`,
			a.ExpenseID, a.ApproverID, a.Status, a.Comments,
		)
		if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
			return err
		}

		next := expense.StatusRejected
		if a.Status == approval.StatusApproved {
			next = expense.StatusApproved
		}
		row = tx.QueryRow(ctx,
			`UPDATE expenses
			 SET status = $1, approved_by = $2, approved_at = now(), updated_at = now()
			 WHERE id = $3
			 RETURNING status, approved_by, approved_at, updated_at`,
			next, a.ApproverID, a.ExpenseID,
		)
		if err := row.Scan(&e.Status, &e.ApprovedBy, &e.ApprovedAt, &e.UpdatedAt); err != nil {
			return err
		}
		exp = e
		return nil
	})
	if err != nil {
		return approval.Approval{}, expense.Expense{}, err
	}
	return a, exp, nil
}
