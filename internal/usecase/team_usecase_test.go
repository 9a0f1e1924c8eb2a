package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/domain/user"
	"skillswap/internal/store"
	"skillswap/internal/store/memory"
)

func newTeamFixture(t *testing.T) (*Teams, store.Stores, user.User, user.User) {
	t.Helper()
	stores := memory.NewStores()
	ctx := context.Background()

	manager, err := stores.Users.Create(ctx, user.User{Email: "manager@example.com", Role: user.RoleManager})
	if err != nil {
		t.Fatalf("seed manager: %v", err)
	}
	agent, err := stores.Users.Create(ctx, user.User{Email: "agent@example.com", Role: user.RoleAgent})
	if err != nil {
		t.Fatalf("seed agent: %v", err)
	}
	return NewTeamUsecase(stores.Users, stores.Teams, stores.Members), stores, manager, agent
}

func TestTeams_CreateAndList(t *testing.T) {
	uc, _, manager, _ := newTeamFixture(t)
	ctx := context.Background()

	created, err := uc.CreateTeam(ctx, manager.ID, "  Platform  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Name != "Platform" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}
	if created.ManagerID != manager.ID {
		t.Fatalf("creator must become manager, got %d", created.ManagerID)
	}

	if _, err := uc.CreateTeam(ctx, manager.ID, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	teams, err := uc.ListTeams(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}
}

func TestTeams_AddMember(t *testing.T) {
	uc, _, manager, agent := newTeamFixture(t)
	ctx := context.Background()

	tm, _ := uc.CreateTeam(ctx, manager.ID, "Platform")

	member, err := uc.AddMember(ctx, manager.ID, tm.ID, agent.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if member.TeamID != tm.ID || member.UserID != agent.ID {
		t.Fatalf("wrong member: %+v", member)
	}

	if _, err := uc.AddMember(ctx, manager.ID, tm.ID, agent.ID); !errors.Is(err, ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}
	if _, err := uc.AddMember(ctx, agent.ID, tm.ID, manager.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-manager, got %v", err)
	}
	if _, err := uc.AddMember(ctx, manager.ID, 404, agent.ID); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
	if _, err := uc.AddMember(ctx, manager.ID, tm.ID, 404); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTeams_RemoveMember(t *testing.T) {
	uc, _, manager, agent := newTeamFixture(t)
	ctx := context.Background()

	tm, _ := uc.CreateTeam(ctx, manager.ID, "Platform")
	if _, err := uc.AddMember(ctx, manager.ID, tm.ID, agent.ID); err != nil {
		t.Fatalf("add member: %v", err)
	}

	if err := uc.RemoveMember(ctx, agent.ID, tm.ID, agent.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-manager, got %v", err)
	}
	if err := uc.RemoveMember(ctx, manager.ID, tm.ID, agent.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.RemoveMember(ctx, manager.ID, tm.ID, agent.ID); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}

	members, err := uc.ListMembers(ctx, tm.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("expected no members, got %d", len(members))
	}
}
