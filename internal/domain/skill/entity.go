package skill

import (
	"strings"
	"time"
)

const (
	DirectionTeach = "teach"
	DirectionLearn = "learn"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Skill is owned by exactly one user. Name is free text and matched
// case-insensitively by the suggestion engine.
type Skill struct {
	ID          int64
	UserID      int64
	Name        string
	Direction   string
	Level       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidDirection(d string) bool {
	return d == DirectionTeach || d == DirectionLearn
}

func ValidLevel(l string) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// NameEqual compares two skill names under case-insensitive equality, the
// only matching signal the suggestion engine uses.
func NameEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
