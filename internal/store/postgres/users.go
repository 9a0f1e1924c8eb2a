package postgres

import (
	"context"

	"skillswap/internal/database"
	"skillswap/internal/domain/user"
)

const userColumns = `id, email, password, first_name, last_name, role, bio, location, created_at, updated_at`

type Users struct {
	db database.DB
}

func NewUsers(db database.DB) *Users {
	return &Users{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (user.User, error) {
	var u user.User
	err := s.Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Role, &u.Bio, &u.Location, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *Users) Get(ctx context.Context, id int64) (user.User, bool, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, err
	}
	return u, true, nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if err != nil {
		if isNoRows(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, err
	}
	return u, true, nil
}

func (r *Users) List(ctx context.Context, pred func(user.User) bool) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(u) {
			out = append(out, u)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Users) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (email, password, first_name, last_name, role, bio, location)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		u.Email, u.Password, u.FirstName, u.LastName, u.Role, u.Bio, u.Location,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *Users) Update(ctx context.Context, id int64, apply func(user.User) user.User) (user.User, bool, error) {
	var out user.User
	found := false
	err := inTx(ctx, r.db, func(tx database.Tx) error {
		u, err := scanUser(tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return err
		}
		found = true

		u = apply(u)
		row := tx.QueryRow(ctx,
			`UPDATE users
			 SET email = $1, password = $2, first_name = $3, last_name = $4, role = $5, bio = $6, location = $7, updated_at = now()
			 WHERE id = $8
			 RETURNING updated_at`,
			u.Email, u.Password, u.FirstName, u.LastName, u.Role, u.Bio, u.Location, id,
		)
		if err := row.Scan(&u.UpdatedAt); err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return user.User{}, false, err
	}
	return out, found, nil
}

func (r *Users) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
