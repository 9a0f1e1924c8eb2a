package team

import "time"

// Team groups users under one manager.
type Team struct {
	ID        int64
	Name      string
	ManagerID int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member joins a user into a team; the pair (TeamID, UserID) is unique.
type Member struct {
	ID        int64
	TeamID    int64
	UserID    int64
	CreatedAt time.Time
}
