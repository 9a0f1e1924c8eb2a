// Package store defines the keyed-collection contract every entity lives
// behind: monotonic int64 ids assigned from 1 and never reused, O(1) get with
// absence reported as a boolean rather than an error, predicate scans in
// insertion order, merge-style partial updates, and idempotent deletes.
//
// Two backends implement it: store/memory (mutex-guarded maps) and
// store/postgres (pgx behind database.DB). Callers choose one at bootstrap;
// the usecase layer never knows which is underneath.
package store

import (
	"context"
	"errors"

	"skillswap/internal/domain/approval"
	"skillswap/internal/domain/expense"
	"skillswap/internal/domain/match"
	"skillswap/internal/domain/message"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/team"
	"skillswap/internal/domain/user"
)

var (
	// ErrExpenseNotFound signals that a decision addressed a nonexistent expense.
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrExpenseNotSubmitted signals a decision against an expense that is not
	// currently submitted, including expenses already in a terminal state.
	ErrExpenseNotSubmitted = errors.New("expense not submitted")
)

type UserStore interface {
	Get(ctx context.Context, id int64) (user.User, bool, error)
	GetByEmail(ctx context.Context, email string) (user.User, bool, error)
	List(ctx context.Context, pred func(user.User) bool) ([]user.User, error)
	Create(ctx context.Context, u user.User) (user.User, error)
	Update(ctx context.Context, id int64, apply func(user.User) user.User) (user.User, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type SkillStore interface {
	Get(ctx context.Context, id int64) (skill.Skill, bool, error)
	List(ctx context.Context, pred func(skill.Skill) bool) ([]skill.Skill, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Update(ctx context.Context, id int64, apply func(skill.Skill) skill.Skill) (skill.Skill, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type MatchStore interface {
	Get(ctx context.Context, id int64) (match.Match, bool, error)
	List(ctx context.Context, pred func(match.Match) bool) ([]match.Match, error)
	Create(ctx context.Context, m match.Match) (match.Match, error)
	Update(ctx context.Context, id int64, apply func(match.Match) match.Match) (match.Match, bool, error)
}

type MessageStore interface {
	Get(ctx context.Context, id int64) (message.Message, bool, error)
	// ListByMatch returns the match's messages in ascending creation order,
	// ids breaking timestamp ties.
	ListByMatch(ctx context.Context, matchID int64) ([]message.Message, error)
	Create(ctx context.Context, m message.Message) (message.Message, error)
}

type ExpenseStore interface {
	Get(ctx context.Context, id int64) (expense.Expense, bool, error)
	List(ctx context.Context, pred func(expense.Expense) bool) ([]expense.Expense, error)
	Create(ctx context.Context, e expense.Expense) (expense.Expense, error)
	Update(ctx context.Context, id int64, apply func(expense.Expense) expense.Expense) (expense.Expense, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ApprovalStore interface {
	List(ctx context.Context, pred func(approval.Approval) bool) ([]approval.Approval, error)
	// Record inserts the decision and moves its expense to the matching
	// terminal status as one atomic step, stamping approver id and time for
	// both outcomes. Returns ErrExpenseNotFound or ErrExpenseNotSubmitted
	// when the expense cannot take the transition.
	Record(ctx context.Context, a approval.Approval) (approval.Approval, expense.Expense, error)
}

type TeamStore interface {
	Get(ctx context.Context, id int64) (team.Team, bool, error)
	List(ctx context.Context, pred func(team.Team) bool) ([]team.Team, error)
	Create(ctx context.Context, t team.Team) (team.Team, error)
	Update(ctx context.Context, id int64, apply func(team.Team) team.Team) (team.Team, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type TeamMemberStore interface {
	List(ctx context.Context, pred func(team.Member) bool) ([]team.Member, error)
	Create(ctx context.Context, m team.Member) (team.Member, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Stores bundles one store per entity type for wiring.
type Stores struct {
	Users     UserStore
	Skills    SkillStore
	Matches   MatchStore
	Messages  MessageStore
	Expenses  ExpenseStore
	Approvals ApprovalStore
	Teams     TeamStore
	Members   TeamMemberStore
}
