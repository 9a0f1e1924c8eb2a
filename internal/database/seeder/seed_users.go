package seeder

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"skillswap/internal/domain/user"
	"skillswap/internal/store"
)

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, stores store.Stores) error {
	items := []user.User{
		{Email: "alice@example.com", Password: "alice-dev-password", FirstName: "Alice", LastName: "Nguyen", Role: user.RoleAgent, Location: "Jakarta"},
		{Email: "bob@example.com", Password: "bob-dev-password", FirstName: "Bob", LastName: "Santos", Role: user.RoleAgent, Location: "Bandung"},
		{Email: "carol@example.com", Password: "carol-dev-password", FirstName: "Carol", LastName: "Wijaya", Role: user.RoleManager, Location: "Surabaya"},
	}

	for _, it := range items {
		_, found, err := stores.Users.GetByEmail(ctx, it.Email)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(it.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		it.Password = string(hash)
		if _, err := stores.Users.Create(ctx, it); err != nil {
			return err
		}
	}
	return nil
}
