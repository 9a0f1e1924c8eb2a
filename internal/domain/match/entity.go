package match

import "time"

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
)

// Match is a directed teacher/learner pairing over one teach skill. Matches
// are never deleted; they only move along the status lifecycle.
type Match struct {
	ID        int64
	TeacherID int64
	LearnerID int64
	SkillID   int64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransition reports whether a status change is legal:
// pending -> accepted|declined, accepted -> completed.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusAccepted || to == StatusDeclined
	case StatusAccepted:
		return to == StatusCompleted
	default:
		return false
	}
}

// Involves reports whether the user is one of the two participants.
func (m Match) Involves(userID int64) bool {
	return m.TeacherID == userID || m.LearnerID == userID
}

// Pairs reports whether the match links the two users in either direction.
func (m Match) Pairs(a, b int64) bool {
	return (m.TeacherID == a && m.LearnerID == b) || (m.TeacherID == b && m.LearnerID == a)
}
