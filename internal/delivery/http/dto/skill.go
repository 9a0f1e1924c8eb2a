package dto

import (
	"time"

	"skillswap/internal/domain/skill"
)

type SkillResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name        string    `json:"name"`
	Direction   string    `json:"direction"`
	Level       string    `json:"level"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromSkill(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Direction:   s.Direction,
		Level:       s.Level,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromSkills(skills []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, FromSkill(s))
	}
	return out
}
