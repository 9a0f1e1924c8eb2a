package seeder

import (
	"context"
	"strings"

	"skillswap/internal/domain/skill"
	"skillswap/internal/store"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, stores store.Stores) error {
	items := []struct {
		Email     string
		Name      string
		Direction string
		Level     string
	}{
		{Email: "alice@example.com", Name: "Go", Direction: skill.DirectionLearn, Level: skill.LevelBeginner},
		{Email: "alice@example.com", Name: "Photography", Direction: skill.DirectionTeach, Level: skill.LevelAdvanced},
		{Email: "bob@example.com", Name: "Go", Direction: skill.DirectionTeach, Level: skill.LevelAdvanced},
		{Email: "bob@example.com", Name: "Photography", Direction: skill.DirectionLearn, Level: skill.LevelBeginner},
		{Email: "carol@example.com", Name: "Spanish", Direction: skill.DirectionTeach, Level: skill.LevelIntermediate},
	}

	for _, it := range items {
		owner, found, err := stores.Users.GetByEmail(ctx, it.Email)
		if err != nil {
			return err
		}
		if !found {
			continue
		}

		existing, err := stores.Skills.List(ctx, func(s skill.Skill) bool {
			return s.UserID == owner.ID && s.Direction == it.Direction && strings.EqualFold(s.Name, it.Name)
		})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}

		if _, err := stores.Skills.Create(ctx, skill.Skill{
			UserID:    owner.ID,
			Name:      it.Name,
			Direction: it.Direction,
			Level:     it.Level,
		}); err != nil {
			return err
		}
	}
	return nil
}
