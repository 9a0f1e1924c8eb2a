// Package postgres implements the store contract on a relational backend via
// database.DB. Ids come from identity columns, so they are monotonic and
// never reused; predicate scans read the full table in id order and filter
// in-process, mirroring the contract's full-collection scan semantics.
package postgres

import (
	"context"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/store"

	"github.com/jackc/pgx/v5"
)

// NewStores wires a full Postgres-backed store set.
func NewStores(db database.DB) store.Stores {
	return store.Stores{
		Users:     NewUsers(db),
		Skills:    NewSkills(db),
		Matches:   NewMatches(db),
		Messages:  NewMessages(db),
		Expenses:  NewExpenses(db),
		Approvals: NewApprovals(db),
		Teams:     NewTeams(db),
		Members:   NewMembers(db),
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// inTx runs fn inside a transaction, rolling back on error.
func inTx(ctx context.Context, db database.DB, fn func(tx database.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
