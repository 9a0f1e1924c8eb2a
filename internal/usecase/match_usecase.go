package usecase

import (
	"context"
	"errors"

	"skillswap/internal/domain/match"
	"skillswap/internal/domain/skill"
	"skillswap/internal/store"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrAlreadyMatched    = errors.New("users already matched")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type RequestMatchInput struct {
	TeacherID int64
	SkillID   int64
}

type MatchUsecase interface {
	Request(ctx context.Context, learnerID int64, in RequestMatchInput) (match.Match, error)
	ListMine(ctx context.Context, userID int64, status string) ([]match.Match, error)
	UpdateStatus(ctx context.Context, userID, matchID int64, status string) (match.Match, error)
}

type Matches struct {
	users   store.UserStore
	skills  store.SkillStore
	matches store.MatchStore
	cache   SuggestionCache
}

func NewMatchUsecase(users store.UserStore, skills store.SkillStore, matches store.MatchStore, cache SuggestionCache) *Matches {
	return &Matches{users: users, skills: skills, matches: matches, cache: cache}
}

// Request creates a pending match from learner to teacher over one teach
// skill. Any existing match between the pair, in either direction and any
// status, blocks a new request.
func (u *Matches) Request(ctx context.Context, learnerID int64, in RequestMatchInput) (match.Match, error) {
	if in.TeacherID == learnerID {
		return match.Match{}, ErrInvalidInput
	}

	if _, found, err := u.users.Get(ctx, in.TeacherID); err != nil {
		return match.Match{}, ErrInternal
	} else if !found {
		return match.Match{}, ErrUserNotFound
	}

	sk, found, err := u.skills.Get(ctx, in.SkillID)
	if err != nil {
		return match.Match{}, ErrInternal
	}
	if !found {
		return match.Match{}, ErrSkillNotFound
	}
	if sk.UserID != in.TeacherID || sk.Direction != skill.DirectionTeach {
		return match.Match{}, ErrInvalidInput
	}

	existing, err := u.matches.List(ctx, func(m match.Match) bool {
		return m.Pairs(in.TeacherID, learnerID)
	})
	if err != nil {
		return match.Match{}, ErrInternal
	}
	if len(existing) > 0 {
		return match.Match{}, ErrAlreadyMatched
	}

	created, err := u.matches.Create(ctx, match.Match{
		TeacherID: in.TeacherID,
		LearnerID: learnerID,
		SkillID:   in.SkillID,
		Status:    match.StatusPending,
	})
	if err != nil {
		return match.Match{}, ErrInternal
	}
	u.invalidate(ctx, created)
	return created, nil
}

func (u *Matches) ListMine(ctx context.Context, userID int64, status string) ([]match.Match, error) {
	if status != "" && !match.ValidStatus(status) {
		return nil, ErrInvalidInput
	}
	items, err := u.matches.List(ctx, func(m match.Match) bool {
		if !m.Involves(userID) {
			return false
		}
		return status == "" || m.Status == status
	})
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Matches) UpdateStatus(ctx context.Context, userID, matchID int64, status string) (match.Match, error) {
	if !match.ValidStatus(status) {
		return match.Match{}, ErrInvalidInput
	}

	existing, found, err := u.matches.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, ErrInternal
	}
	if !found {
		return match.Match{}, ErrMatchNotFound
	}
	if !existing.Involves(userID) {
		return match.Match{}, ErrForbidden
	}
	if !match.CanTransition(existing.Status, status) {
		return match.Match{}, ErrInvalidTransition
	}

	updated, found, err := u.matches.Update(ctx, matchID, func(m match.Match) match.Match {
		m.Status = status
		return m
	})
	if err != nil {
		return match.Match{}, ErrInternal
	}
	if !found {
		return match.Match{}, ErrMatchNotFound
	}
	u.invalidate(ctx, updated)
	return updated, nil
}

func (u *Matches) invalidate(ctx context.Context, m match.Match) {
	if u.cache != nil {
		_ = u.cache.InvalidateSuggestions(ctx, m.TeacherID, m.LearnerID)
	}
}
