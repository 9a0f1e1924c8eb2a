package matching

import (
	"testing"

	"skillswap/internal/domain/match"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"
)

func TestSuggest_MatchesNamesCaseInsensitively(t *testing.T) {
	users := []user.User{
		{ID: 1, Email: "learner@example.com"},
		{ID: 2, Email: "teacher@example.com"},
	}
	skills := []skill.Skill{
		{ID: 1, UserID: 1, Name: "python", Direction: skill.DirectionLearn},
		{ID: 2, UserID: 2, Name: "Python", Direction: skill.DirectionTeach},
	}

	got := Suggest(1, users, skills, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Teacher.ID != 2 {
		t.Fatalf("expected teacher 2, got %d", got[0].Teacher.ID)
	}
	if got[0].Skill.ID != 2 || got[0].LearningSkill.ID != 1 {
		t.Fatalf("wrong skill pairing: %+v", got[0])
	}
}

func TestSuggest_IgnoresDirectionMismatch(t *testing.T) {
	users := []user.User{{ID: 1}, {ID: 2}}
	skills := []skill.Skill{
		{ID: 1, UserID: 1, Name: "Guitar", Direction: skill.DirectionLearn},
		// Same name but the other user also wants to learn it.
		{ID: 2, UserID: 2, Name: "Guitar", Direction: skill.DirectionLearn},
	}

	if got := Suggest(1, users, skills, nil); len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestSuggest_ExcludesSelf(t *testing.T) {
	users := []user.User{{ID: 1}}
	skills := []skill.Skill{
		{ID: 1, UserID: 1, Name: "Chess", Direction: skill.DirectionLearn},
		{ID: 2, UserID: 1, Name: "Chess", Direction: skill.DirectionTeach},
	}

	if got := Suggest(1, users, skills, nil); len(got) != 0 {
		t.Fatalf("a user must not be suggested to themselves, got %d", len(got))
	}
}

func TestSuggest_ExcludesAlreadyMatchedPairsAnyStatus(t *testing.T) {
	users := []user.User{{ID: 1}, {ID: 2}, {ID: 3}}
	skills := []skill.Skill{
		{ID: 1, UserID: 1, Name: "Go", Direction: skill.DirectionLearn},
		{ID: 2, UserID: 2, Name: "Go", Direction: skill.DirectionTeach},
		{ID: 3, UserID: 3, Name: "Go", Direction: skill.DirectionTeach},
	}
	// A declined match still suppresses re-suggestion, and direction does
	// not matter: user 1 taught user 2 something else before.
	matches := []match.Match{
		{ID: 1, TeacherID: 1, LearnerID: 2, SkillID: 9, Status: match.StatusDeclined},
	}

	got := Suggest(1, users, skills, matches)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Teacher.ID != 3 {
		t.Fatalf("expected teacher 3, got %d", got[0].Teacher.ID)
	}
}

func TestSuggest_NoLearnSkillsYieldsEmpty(t *testing.T) {
	users := []user.User{{ID: 1}, {ID: 2}}
	skills := []skill.Skill{
		{ID: 1, UserID: 2, Name: "Go", Direction: skill.DirectionTeach},
	}

	got := Suggest(1, users, skills, nil)
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestSuggest_OrderFollowsLearnSkillsThenUsers(t *testing.T) {
	users := []user.User{{ID: 1}, {ID: 2}, {ID: 3}}
	skills := []skill.Skill{
		{ID: 1, UserID: 1, Name: "Go", Direction: skill.DirectionLearn},
		{ID: 2, UserID: 1, Name: "Rust", Direction: skill.DirectionLearn},
		{ID: 3, UserID: 2, Name: "Rust", Direction: skill.DirectionTeach},
		{ID: 4, UserID: 3, Name: "Go", Direction: skill.DirectionTeach},
		{ID: 5, UserID: 3, Name: "Rust", Direction: skill.DirectionTeach},
	}

	got := Suggest(1, users, skills, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	// Learn skill "Go" first (only teacher 3), then "Rust" (teacher 2
	// before teacher 3, creation order).
	wantTeachers := []int64{3, 2, 3}
	wantSkills := []int64{4, 3, 5}
	for i := range got {
		if got[i].Teacher.ID != wantTeachers[i] || got[i].Skill.ID != wantSkills[i] {
			t.Fatalf("position %d: got teacher %d skill %d", i, got[i].Teacher.ID, got[i].Skill.ID)
		}
	}
}
