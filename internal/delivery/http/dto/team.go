package dto

import (
	"time"

	"skillswap/internal/domain/team"
)

type TeamResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ManagerID int64     `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTeam(t team.Team) TeamResponse {
	return TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		ManagerID: t.ManagerID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTeams(teams []team.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, FromTeam(t))
	}
	return out
}

type TeamMemberResponse struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTeamMember(m team.Member) TeamMemberResponse {
	return TeamMemberResponse{
		ID:        m.ID,
		TeamID:    m.TeamID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func FromTeamMembers(members []team.Member) []TeamMemberResponse {
	out := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, FromTeamMember(m))
	}
	return out
}
