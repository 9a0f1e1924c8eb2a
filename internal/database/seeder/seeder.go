// Package seeder loads development fixtures through the store layer, so the
// same seed works against either backend.
package seeder

import (
	"context"
	"fmt"

	"skillswap/internal/store"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, stores store.Stores) error
}

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, stores store.Stores) error {
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, stores); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}

func Defaults() []Seeder {
	return []Seeder{
		UsersSeeder{},
		SkillsSeeder{},
	}
}
