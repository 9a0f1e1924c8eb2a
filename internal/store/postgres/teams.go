package postgres

import (
	"context"

	"skillswap/internal/database"
	"skillswap/internal/domain/team"
)

const teamColumns = `id, name, manager_id, created_at, updated_at`

type Teams struct {
	db database.DB
}

func NewTeams(db database.DB) *Teams {
	return &Teams{db: db}
}

func scanTeam(sc scanner) (team.Team, error) {
	var t team.Team
	err := sc.Scan(&t.ID, &t.Name, &t.ManagerID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *Teams) Get(ctx context.Context, id int64) (team.Team, bool, error) {
	t, err := scanTeam(r.db.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, err
	}
	return t, true, nil
}

func (r *Teams) List(ctx context.Context, pred func(team.Team) bool) ([]team.Team, error) {
	rows, err := r.db.Query(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]team.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(t) {
			out = append(out, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Teams) Create(ctx context.Context, t team.Team) (team.Team, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO teams (name, manager_id) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		t.Name, t.ManagerID,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return team.Team{}, err
	}
	return t, nil
}

func (r *Teams) Update(ctx context.Context, id int64, apply func(team.Team) team.Team) (team.Team, bool, error) {
	var out team.Team
	found := false
	err := inTx(ctx, r.db, func(tx database.Tx) error {
		t, err := scanTeam(tx.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return err
		}
		found = true

		t = apply(t)
		row := tx.QueryRow(ctx,
			`UPDATE teams SET name = $1, manager_id = $2, updated_at = now() WHERE id = $3 RETURNING updated_at`,
			t.Name, t.ManagerID, id,
		)
		if err := row.Scan(&t.UpdatedAt); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return out, found, nil
}

func (r *Teams) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type Members struct {
	db database.DB
}

func NewMembers(db database.DB) *Members {
	return &Members{db: db}
}

func scanMember(sc scanner) (team.Member, error) {
	var m team.Member
	err := sc.Scan(&m.ID, &m.TeamID, &m.UserID, &m.CreatedAt)
	return m, err
}

func (r *Members) List(ctx context.Context, pred func(team.Member) bool) ([]team.Member, error) {
	rows, err := r.db.Query(ctx, `SELECT id, team_id, user_id, created_at FROM team_members ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]team.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(m) {
			out = append(out, m)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Members) Create(ctx context.Context, m team.Member) (team.Member, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2) RETURNING id, created_at`,
		m.TeamID, m.UserID,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		return team.Member{}, err
	}
	return m, nil
}

func (r *Members) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
