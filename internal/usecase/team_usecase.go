package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/team"
	"skillswap/internal/store"
)

var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrMemberNotFound = errors.New("team member not found")
	ErrAlreadyMember  = errors.New("user already a team member")
)

type TeamUsecase interface {
	CreateTeam(ctx context.Context, managerID int64, name string) (team.Team, error)
	ListTeams(ctx context.Context) ([]team.Team, error)
	AddMember(ctx context.Context, requesterID, teamID, userID int64) (team.Member, error)
	ListMembers(ctx context.Context, teamID int64) ([]team.Member, error)
	RemoveMember(ctx context.Context, requesterID, teamID, userID int64) error
}

type Teams struct {
	users   store.UserStore
	teams   store.TeamStore
	members store.TeamMemberStore
}

func NewTeamUsecase(users store.UserStore, teams store.TeamStore, members store.TeamMemberStore) *Teams {
	return &Teams{users: users, teams: teams, members: members}
}

func (u *Teams) CreateTeam(ctx context.Context, managerID int64, name string) (team.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, ErrInvalidInput
	}
	created, err := u.teams.Create(ctx, team.Team{Name: name, ManagerID: managerID})
	if err != nil {
		return team.Team{}, ErrInternal
	}
	return created, nil
}

func (u *Teams) ListTeams(ctx context.Context) ([]team.Team, error) {
	items, err := u.teams.List(ctx, nil)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// AddMember is manager-only; adding a user twice reports a duplicate.
func (u *Teams) AddMember(ctx context.Context, requesterID, teamID, userID int64) (team.Member, error) {
	t, found, err := u.teams.Get(ctx, teamID)
	if err != nil {
		return team.Member{}, ErrInternal
	}
	if !found {
		return team.Member{}, ErrTeamNotFound
	}
	if t.ManagerID != requesterID {
		return team.Member{}, ErrForbidden
	}

	if _, found, err := u.users.Get(ctx, userID); err != nil {
		return team.Member{}, ErrInternal
	} else if !found {
		return team.Member{}, ErrUserNotFound
	}

	existing, err := u.members.List(ctx, func(m team.Member) bool {
		return m.TeamID == teamID && m.UserID == userID
	})
	if err != nil {
		return team.Member{}, ErrInternal
	}
	if len(existing) > 0 {
		return team.Member{}, ErrAlreadyMember
	}

	created, err := u.members.Create(ctx, team.Member{TeamID: teamID, UserID: userID})
	if err != nil {
		return team.Member{}, ErrInternal
	}
	return created, nil
}

func (u *Teams) ListMembers(ctx context.Context, teamID int64) ([]team.Member, error) {
	if _, found, err := u.teams.Get(ctx, teamID); err != nil {
		return nil, ErrInternal
	} else if !found {
		return nil, ErrTeamNotFound
	}
	items, err := u.members.List(ctx, func(m team.Member) bool { return m.TeamID == teamID })
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Teams) RemoveMember(ctx context.Context, requesterID, teamID, userID int64) error {
	t, found, err := u.teams.Get(ctx, teamID)
	if err != nil {
		return ErrInternal
	}
	if !found {
		return ErrTeamNotFound
	}
	if t.ManagerID != requesterID {
		return ErrForbidden
	}

	existing, err := u.members.List(ctx, func(m team.Member) bool {
		return m.TeamID == teamID && m.UserID == userID
	})
	if err != nil {
		return ErrInternal
	}
	if len(existing) == 0 {
		return ErrMemberNotFound
	}

	if _, err := u.members.Delete(ctx, existing[0].ID); err != nil {
		return ErrInternal
	}
	return nil
}
