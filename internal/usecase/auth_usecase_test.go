package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillswap/internal/pkg/jwt"
	"skillswap/internal/store/memory"
)

func newTestJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	stores := memory.NewStores()
	uc := NewAuthUsecase(stores.Users, newTestJWT())
	ctx := context.Background()

	usr, access, refresh, err := uc.Register(ctx, RegisterInput{
		Email:     "  Alice@Example.COM ",
		Password:  "s3cret",
		FirstName: "Alice",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.Password != "" {
		t.Fatalf("password must be blanked in responses")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}

	got, _, _, err := uc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != usr.ID {
		t.Fatalf("expected user %d, got %d", usr.ID, got.ID)
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	stores := memory.NewStores()
	uc := NewAuthUsecase(stores.Users, newTestJWT())
	ctx := context.Background()

	if _, _, _, err := uc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "x"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, _, err := uc.Register(ctx, RegisterInput{Email: "A@EXAMPLE.com", Password: "y"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	stores := memory.NewStores()
	uc := NewAuthUsecase(stores.Users, newTestJWT())
	ctx := context.Background()

	if _, _, _, err := uc.Register(ctx, RegisterInput{Email: "", Password: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty email, got %v", err)
	}
	if _, _, _, err := uc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank password, got %v", err)
	}
}

func TestAuth_LoginRejectsBadCredentials(t *testing.T) {
	stores := memory.NewStores()
	uc := NewAuthUsecase(stores.Users, newTestJWT())
	ctx := context.Background()

	if _, _, _, err := uc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "right"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, _, err := uc.Login(ctx, LoginInput{Email: "a@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := uc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "right"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuth_RefreshRotatesTokens(t *testing.T) {
	stores := memory.NewStores()
	uc := NewAuthUsecase(stores.Users, newTestJWT())
	ctx := context.Background()

	_, access, refresh, err := uc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	newAccess, newRefresh, err := uc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatalf("expected both tokens")
	}

	// An access token is not accepted on the refresh endpoint.
	if _, _, err := uc.Refresh(ctx, access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for access token, got %v", err)
	}
	if _, _, err := uc.Refresh(ctx, "garbage"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, _, err := uc.Refresh(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}
