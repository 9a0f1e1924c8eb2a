package dto

import (
	"time"

	"skillswap/internal/domain/match"
	"skillswap/internal/domain/message"
)

type MatchResponse struct {
	ID        int64     `json:"id"`
	LearnerID int64     `json:"learner_id"`
	TeacherID int64     `json:"teacher_id"`
	SkillID   int64     `json:"skill_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMatch(m match.Match) MatchResponse {
	return MatchResponse{
		ID:        m.ID,
		LearnerID: m.LearnerID,
		TeacherID: m.TeacherID,
		SkillID:   m.SkillID,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromMatches(matches []match.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, FromMatch(m))
	}
	return out
}

// SuggestionResponse pairs a prospective teacher's teach skill with the
// learn skill of the requesting user it satisfies.
type SuggestionResponse struct {
	Teacher       UserResponse  `json:"teacher"`
	Skill         SkillResponse `json:"skill"`
	LearningSkill SkillResponse `json:"learning_skill"`
}

type MessageResponse struct {
	ID        int64     `json:"id"`
	MatchID   int64     `json:"match_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func FromMessage(m message.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		MatchID:   m.MatchID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func FromMessages(messages []message.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, FromMessage(m))
	}
	return out
}
