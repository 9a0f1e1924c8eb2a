package postgres

import (
	"context"

	"skillswap/internal/database"
	"skillswap/internal/domain/expense"
)

const expenseColumns = `id, user_id, title, description, amount, category, status, submitted_at, approved_by, approved_at, created_at, updated_at`

type Expenses struct {
	db database.DB
}

func NewExpenses(db database.DB) *Expenses {
	return &Expenses{db: db}
}

func scanExpense(sc scanner) (expense.Expense, error) {
	var e expense.Expense
	err := sc.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.Amount, &e.Category, &e.Status,
		&e.SubmittedAt, &e.ApprovedBy, &e.ApprovedAt, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *Expenses) Get(ctx context.Context, id int64) (expense.Expense, bool, error) {
	e, err := scanExpense(r.db.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return expense.Expense{}, false, nil
		}
		return expense.Expense{}, false, err
	}
	return e, true, nil
}

func (r *Expenses) List(ctx context.Context, pred func(expense.Expense) bool) ([]expense.Expense, error) {
	rows, err := r.db.Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]expense.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(e) {
			out = append(out, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Expenses) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO expenses (user_id, title, description, amount, category, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		e.UserID, e.Title, e.Description, e.Amount, e.Category, e.Status,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return expense.Expense{}, err
	}
	return e, nil
}

func (r *Expenses) Update(ctx context.Context, id int64, apply func(expense.Expense) expense.Expense) (expense.Expense, bool, error) {
	var out expense.Expense
	found := false
	err := inTx(ctx, r.db, func(tx database.Tx) error {
		e, err := scanExpense(tx.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return err
		}
		found = true

		e = apply(e)
		row := tx.QueryRow(ctx,
			`UPDATE expenses
			 SET title = $1, description = $2, amount = $3, category = $4, status = $5,
			     submitted_at = $6, approved_by = $7, approved_at = $8, updated_at = now()
			 WHERE id = $9
			 RETURNING updated_at`,
			e.Title, e.Description, e.Amount, e.Category, e.Status,
			e.SubmittedAt, e.ApprovedBy, e.ApprovedAt, id,
		)
		if err := row.Scan(&e.UpdatedAt); err != nil {
			return err
		}
		out = e
		return nil
	})
	if err != nil {
		return expense.Expense{}, false, err
	}
	return out, found, nil
}

func (r *Expenses) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
