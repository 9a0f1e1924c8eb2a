package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/skill"
	"skillswap/internal/store"
)

var (
	ErrSkillNotFound    = errors.New("skill not found")
	ErrInvalidDirection = errors.New("invalid skill direction")
	ErrInvalidLevel     = errors.New("invalid proficiency level")
	ErrForbidden        = errors.New("forbidden")
)

// SuggestionCache is the slice of the Redis cache the usecases need; a nil
// cache disables caching entirely.
type SuggestionCache interface {
	GetSuggestions(ctx context.Context, userID int64, out any) (bool, error)
	SetSuggestions(ctx context.Context, userID int64, value any) error
	InvalidateSuggestions(ctx context.Context, userIDs ...int64) error
}

type AddSkillInput struct {
	Name        string
	Direction   string
	Level       string
	Description string
}

// UpdateSkillInput is a partial update; nil fields are not merged.
type UpdateSkillInput struct {
	Name        *string
	Level       *string
	Description *string
}

type SkillUsecase interface {
	ListUserSkills(ctx context.Context, userID int64) ([]skill.Skill, error)
	AddSkill(ctx context.Context, userID int64, in AddSkillInput) (skill.Skill, error)
	UpdateSkill(ctx context.Context, userID, skillID int64, in UpdateSkillInput) (skill.Skill, error)
	DeleteSkill(ctx context.Context, userID, skillID int64) error
}

type Skills struct {
	skills store.SkillStore
	cache  SuggestionCache
}

func NewSkillUsecase(skills store.SkillStore, cache SuggestionCache) *Skills {
	return &Skills{skills: skills, cache: cache}
}

func (u *Skills) ListUserSkills(ctx context.Context, userID int64) ([]skill.Skill, error) {
	items, err := u.skills.List(ctx, func(s skill.Skill) bool { return s.UserID == userID })
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Skills) AddSkill(ctx context.Context, userID int64, in AddSkillInput) (skill.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	if !skill.ValidDirection(in.Direction) {
		return skill.Skill{}, ErrInvalidDirection
	}
	level := in.Level
	if level == "" {
		level = skill.LevelBeginner
	}
	if !skill.ValidLevel(level) {
		return skill.Skill{}, ErrInvalidLevel
	}

	created, err := u.skills.Create(ctx, skill.Skill{
		UserID:      userID,
		Name:        name,
		Direction:   in.Direction,
		Level:       level,
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	u.invalidate(ctx, userID)
	return created, nil
}

func (u *Skills) UpdateSkill(ctx context.Context, userID, skillID int64, in UpdateSkillInput) (skill.Skill, error) {
	existing, found, err := u.skills.Get(ctx, skillID)
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	if !found {
		return skill.Skill{}, ErrSkillNotFound
	}
	if existing.UserID != userID {
		return skill.Skill{}, ErrForbidden
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	if in.Level != nil && !skill.ValidLevel(*in.Level) {
		return skill.Skill{}, ErrInvalidLevel
	}

	updated, found, err := u.skills.Update(ctx, skillID, func(s skill.Skill) skill.Skill {
		if in.Name != nil {
			s.Name = strings.TrimSpace(*in.Name)
		}
		if in.Level != nil {
			s.Level = *in.Level
		}
		if in.Description != nil {
			s.Description = *in.Description
		}
		return s
	})
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	if !found {
		return skill.Skill{}, ErrSkillNotFound
	}
	u.invalidate(ctx, userID)
	return updated, nil
}

func (u *Skills) DeleteSkill(ctx context.Context, userID, skillID int64) error {
	existing, found, err := u.skills.Get(ctx, skillID)
	if err != nil {
		return ErrInternal
	}
	if !found {
		return ErrSkillNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	removed, err := u.skills.Delete(ctx, skillID)
	if err != nil {
		return ErrInternal
	}
	if !removed {
		return ErrSkillNotFound
	}
	u.invalidate(ctx, userID)
	return nil
}

func (u *Skills) invalidate(ctx context.Context, userID int64) {
	if u.cache != nil {
		_ = u.cache.InvalidateSuggestions(ctx, userID)
	}
}
