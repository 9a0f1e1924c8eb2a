package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"skillswap/internal/domain/user"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/store"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	users store.UserStore
	jwt   jwt.Service
}

func NewAuthUsecase(users store.UserStore, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return user.User{}, "", "", ErrInvalidInput
	}

	// The store does not enforce uniqueness on natural keys; the duplicate
	// check lives here.
	if _, exists, err := u.users.GetByEmail(ctx, email); err != nil {
		return user.User{}, "", "", ErrInternal
	} else if exists {
		return user.User{}, "", "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}

	created, err := u.users.Create(ctx, user.User{
		Email:     email,
		Password:  string(hash),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Role:      strings.TrimSpace(in.Role),
	})
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}

	access, refresh, err := u.issueTokens(created)
	if err != nil {
		return user.User{}, "", "", err
	}
	return sanitizeUser(created), access, refresh, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	usr, found, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	if !found {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(in.Password)); err != nil {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, "", "", err
	}
	return sanitizeUser(usr), access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, found, err := u.users.Get(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}
	if !found {
		return "", "", ErrInvalidRefreshToken
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (u *Auth) issueTokens(usr user.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.Password = ""
	return u
}
