package jwt

import (
	"errors"
	"testing"
	"time"
)

func newService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := newService()

	tok, err := svc.GenerateAccessToken(42, "a@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user 42, got %d", claims.UserID)
	}
	if claims.Email != "a@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token, got %q", claims.TokenType)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token reported as refresh")
	}
}

func TestHMACService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newService()

	tok, err := svc.GenerateRefreshToken(7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("expected user 7, got %d", claims.UserID)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("refresh token not recognized")
	}
}

func TestHMACService_RejectsGarbage(t *testing.T) {
	svc := newService()

	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_RejectsForeignSignature(t *testing.T) {
	other := NewHMACService("other-access", "other-refresh", time.Minute, time.Hour)
	tok, err := other.GenerateAccessToken(1, "a@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := newService().ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := newService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := svc.GenerateAccessToken(1, "a@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
