package matching

import (
	"skillswap/internal/domain/match"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"
)

// Candidate pairs a prospective teacher's teach skill with the learner's
// learn skill it satisfies. A Candidate is a proposal, not yet a Match.
type Candidate struct {
	Teacher       user.User
	Skill         skill.Skill
	LearningSkill skill.Skill
}

// Suggest computes teacher candidates for every learn skill owned by
// learnerID. Inputs must be in creation order; the output order is the
// iteration artifact (learn skills outer, users then their teach skills
// inner) and is deterministic for a given store state.
//
// A user pair with any existing match between them, in either direction and
// regardless of status, is excluded: a declined match permanently suppresses
// re-suggestion of that pairing. Skill names are the only matching signal,
// compared case-insensitively.
//
// The scan is O(L x U x T) with no indexing; the data sets it serves are
// expected to stay small.
func Suggest(learnerID int64, users []user.User, skills []skill.Skill, matches []match.Match) []Candidate {
	learning := make([]skill.Skill, 0)
	for _, s := range skills {
		if s.UserID == learnerID && s.Direction == skill.DirectionLearn {
			learning = append(learning, s)
		}
	}
	if len(learning) == 0 {
		return []Candidate{}
	}

	paired := make(map[int64]bool)
	for _, m := range matches {
		if m.TeacherID == learnerID {
			paired[m.LearnerID] = true
		}
		if m.LearnerID == learnerID {
			paired[m.TeacherID] = true
		}
	}

	out := make([]Candidate, 0)
	for _, ls := range learning {
		for _, u := range users {
			if u.ID == learnerID || paired[u.ID] {
				continue
			}
			for _, ts := range skills {
				if ts.UserID != u.ID || ts.Direction != skill.DirectionTeach {
					continue
				}
				if skill.NameEqual(ts.Name, ls.Name) {
					out = append(out, Candidate{Teacher: u, Skill: ts, LearningSkill: ls})
				}
			}
		}
	}
	return out
}
