package usecase

import (
	"context"

	"skillswap/internal/domain/match"
	"skillswap/internal/domain/matching"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"
	"skillswap/internal/store"
)

// Suggestion is a candidate pairing proposed to a learner, not yet a Match.
type Suggestion struct {
	Teacher       user.User   `json:"teacher"`
	Skill         skill.Skill `json:"skill"`
	LearningSkill skill.Skill `json:"learning_skill"`
}

type MatchingUsecase interface {
	Suggest(ctx context.Context, userID int64) ([]Suggestion, error)
}

type Matching struct {
	users   store.UserStore
	skills  store.SkillStore
	matches store.MatchStore
	cache   SuggestionCache
}

func NewMatchingUsecase(users store.UserStore, skills store.SkillStore, matches store.MatchStore, cache SuggestionCache) *Matching {
	return &Matching{users: users, skills: skills, matches: matches, cache: cache}
}

// Suggest returns teacher candidates for the user's learn skills. An unknown
// user id behaves exactly like a user with no learning skills: empty result,
// no error. Results are served from the per-user cache when present; misses
// run the full engine scan and populate it.
func (u *Matching) Suggest(ctx context.Context, userID int64) ([]Suggestion, error) {
	if u.cache != nil {
		var cached []Suggestion
		if hit, err := u.cache.GetSuggestions(ctx, userID, &cached); err == nil && hit {
			return cached, nil
		}
	}

	users, err := u.users.List(ctx, nil)
	if err != nil {
		return nil, ErrInternal
	}
	skills, err := u.skills.List(ctx, nil)
	if err != nil {
		return nil, ErrInternal
	}
	matches, err := u.matches.List(ctx, func(m match.Match) bool { return m.Involves(userID) })
	if err != nil {
		return nil, ErrInternal
	}

	candidates := matching.Suggest(userID, users, skills, matches)

	out := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Suggestion{
			Teacher:       sanitizeUser(c.Teacher),
			Skill:         c.Skill,
			LearningSkill: c.LearningSkill,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetSuggestions(ctx, userID, out)
	}
	return out, nil
}
