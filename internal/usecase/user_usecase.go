package usecase

import (
	"context"
	"errors"

	"skillswap/internal/domain/user"
	"skillswap/internal/store"
)

var ErrUserNotFound = errors.New("user not found")

// UpdateProfileInput carries only the fields the caller supplied; nil fields
// are left untouched by the merge.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Role      *string
	Bio       *string
	Location  *string
}

type UserUsecase interface {
	GetUser(ctx context.Context, id int64) (user.User, error)
	UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (user.User, error)
}

type Users struct {
	users store.UserStore
}

func NewUserUsecase(users store.UserStore) *Users {
	return &Users{users: users}
}

func (u *Users) GetUser(ctx context.Context, id int64) (user.User, error) {
	usr, found, err := u.users.Get(ctx, id)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if !found {
		return user.User{}, ErrUserNotFound
	}
	return sanitizeUser(usr), nil
}

func (u *Users) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (user.User, error) {
	updated, found, err := u.users.Update(ctx, userID, func(usr user.User) user.User {
		if in.FirstName != nil {
			usr.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			usr.LastName = *in.LastName
		}
		if in.Role != nil {
			usr.Role = *in.Role
		}
		if in.Bio != nil {
			usr.Bio = *in.Bio
		}
		if in.Location != nil {
			usr.Location = *in.Location
		}
		return usr
	})
	if err != nil {
		return user.User{}, ErrInternal
	}
	if !found {
		return user.User{}, ErrUserNotFound
	}
	return sanitizeUser(updated), nil
}
