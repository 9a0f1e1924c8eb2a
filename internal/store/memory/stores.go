// Package memory is the in-process backend of the store contract: one
// Collection per entity type, safe for concurrent use within one process.
// Nothing is persisted; restarts start the id counters over.
package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"skillswap/internal/domain/approval"
	"skillswap/internal/domain/expense"
	"skillswap/internal/domain/match"
	"skillswap/internal/domain/message"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/team"
	"skillswap/internal/domain/user"
	"skillswap/internal/store"
)

type Users struct {
	*Collection[user.User]
}

func NewUsers() *Users {
	return &Users{Collection: NewCollection(Hooks[user.User]{
		AssignID: func(u user.User, id int64) user.User { u.ID = id; return u },
		Stamp: func(u user.User, now time.Time) user.User {
			u.CreatedAt = now
			u.UpdatedAt = now
			return u
		},
		Touch: func(u user.User, now time.Time) user.User { u.UpdatedAt = now; return u },
	})}
}

func (s *Users) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	found, err := s.List(ctx, func(u user.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err != nil || len(found) == 0 {
		return user.User{}, false, err
	}
	return found[0], true, nil
}

type Skills struct {
	*Collection[skill.Skill]
}

func NewSkills() *Skills {
	return &Skills{Collection: NewCollection(Hooks[skill.Skill]{
		AssignID: func(s skill.Skill, id int64) skill.Skill { s.ID = id; return s },
		Stamp: func(s skill.Skill, now time.Time) skill.Skill {
			s.CreatedAt = now
			s.UpdatedAt = now
			return s
		},
		Touch: func(s skill.Skill, now time.Time) skill.Skill { s.UpdatedAt = now; return s },
	})}
}

type Matches struct {
	*Collection[match.Match]
}

func NewMatches() *Matches {
	return &Matches{Collection: NewCollection(Hooks[match.Match]{
		AssignID: func(m match.Match, id int64) match.Match { m.ID = id; return m },
		Stamp: func(m match.Match, now time.Time) match.Match {
			m.CreatedAt = now
			m.UpdatedAt = now
			return m
		},
		Touch: func(m match.Match, now time.Time) match.Match { m.UpdatedAt = now; return m },
	})}
}

type Messages struct {
	*Collection[message.Message]
}

func NewMessages() *Messages {
	return &Messages{Collection: NewCollection(Hooks[message.Message]{
		AssignID: func(m message.Message, id int64) message.Message { m.ID = id; return m },
		Stamp:    func(m message.Message, now time.Time) message.Message { m.CreatedAt = now; return m },
	})}
}

func (s *Messages) ListByMatch(ctx context.Context, matchID int64) ([]message.Message, error) {
	msgs, err := s.List(ctx, func(m message.Message) bool { return m.MatchID == matchID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

type Expenses struct {
	*Collection[expense.Expense]
}

func NewExpenses() *Expenses {
	return &Expenses{Collection: NewCollection(Hooks[expense.Expense]{
		AssignID: func(e expense.Expense, id int64) expense.Expense { e.ID = id; return e },
		Stamp: func(e expense.Expense, now time.Time) expense.Expense {
			e.CreatedAt = now
			e.UpdatedAt = now
			return e
		},
		Touch: func(e expense.Expense, now time.Time) expense.Expense { e.UpdatedAt = now; return e },
	})}
}

type Approvals struct {
	*Collection[approval.Approval]
	expenses *Expenses
	now      func() time.Time
}

func NewApprovals(expenses *Expenses) *Approvals {
	return &Approvals{
		Collection: NewCollection(Hooks[approval.Approval]{
			AssignID: func(a approval.Approval, id int64) approval.Approval { a.ID = id; return a },
			Stamp:    func(a approval.Approval, now time.Time) approval.Approval { a.CreatedAt = now; return a },
		}),
		expenses: expenses,
		now:      time.Now,
	}
}

// Record transitions the expense before inserting the decision, so no reader
// can observe a recorded approval whose expense has not moved.
func (s *Approvals) Record(ctx context.Context, a approval.Approval) (approval.Approval, expense.Expense, error) {
	decidedAt := s.now()
	exp, ok, err := s.expenses.Apply(ctx, a.ExpenseID, func(e expense.Expense) (expense.Expense, error) {
		if e.Status != expense.StatusSubmitted {
			return e, store.ErrExpenseNotSubmitted
		}
		if a.Status == approval.StatusApproved {
			e.Status = expense.StatusApproved
		} else {
			e.Status = expense.StatusRejected
		}
		e.ApprovedBy = &a.ApproverID
		e.ApprovedAt = &decidedAt
		return e, nil
	})
	if err != nil {
		return approval.Approval{}, expense.Expense{}, err
	}
	if !ok {
		return approval.Approval{}, expense.Expense{}, store.ErrExpenseNotFound
	}

	created, err := s.Create(ctx, a)
	if err != nil {
		return approval.Approval{}, expense.Expense{}, err
	}
	return created, exp, nil
}

type Teams struct {
	*Collection[team.Team]
}

func NewTeams() *Teams {
	return &Teams{Collection: NewCollection(Hooks[team.Team]{
		AssignID: func(t team.Team, id int64) team.Team { t.ID = id; return t },
		Stamp: func(t team.Team, now time.Time) team.Team {
			t.CreatedAt = now
			t.UpdatedAt = now
			return t
		},
		Touch: func(t team.Team, now time.Time) team.Team { t.UpdatedAt = now; return t },
	})}
}

type Members struct {
	*Collection[team.Member]
}

func NewMembers() *Members {
	return &Members{Collection: NewCollection(Hooks[team.Member]{
		AssignID: func(m team.Member, id int64) team.Member { m.ID = id; return m },
		Stamp:    func(m team.Member, now time.Time) team.Member { m.CreatedAt = now; return m },
	})}
}

// NewStores wires a full in-memory store set.
func NewStores() store.Stores {
	expenses := NewExpenses()
	return store.Stores{
		Users:     NewUsers(),
		Skills:    NewSkills(),
		Matches:   NewMatches(),
		Messages:  NewMessages(),
		Expenses:  expenses,
		Approvals: NewApprovals(expenses),
		Teams:     NewTeams(),
		Members:   NewMembers(),
	}
}
