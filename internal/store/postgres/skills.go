package postgres

import (
	"context"

	"skillswap/internal/database"
	"skillswap/internal/domain/skill"
)

const skillColumns = `id, user_id, name, direction, level, description, created_at, updated_at`

type Skills struct {
	db database.DB
}

func NewSkills(db database.DB) *Skills {
	return &Skills{db: db}
}

func scanSkill(sc scanner) (skill.Skill, error) {
	var s skill.Skill
	err := sc.Scan(&s.ID, &s.UserID, &s.Name, &s.Direction, &s.Level, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *Skills) Get(ctx context.Context, id int64) (skill.Skill, bool, error) {
	s, err := scanSkill(r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return skill.Skill{}, false, nil
		}
		return skill.Skill{}, false, err
	}
	return s, true, nil
}

func (r *Skills) List(ctx context.Context, pred func(skill.Skill) bool) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(s) {
			out = append(out, s)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Skills) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (user_id, name, direction, level, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.UserID, s.Name, s.Direction, s.Level, s.Description,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *Skills) Update(ctx context.Context, id int64, apply func(skill.Skill) skill.Skill) (skill.Skill, bool, error) {
	var out skill.Skill
	found := false
	err := inTx(ctx, r.db, func(tx database.Tx) error {
		s, err := scanSkill(tx.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return err
		}
		found = true

		s = apply(s)
		row := tx.QueryRow(ctx,
			`UPDATE skills
			 SET name = $1, direction = $2, level = $3, description = $4, updated_at = now()
			 WHERE id = $5
			 RETURNING updated_at`,
			s.Name, s.Direction, s.Level, s.Description, id,
		)
		if err := row.Scan(&s.UpdatedAt); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return skill.Skill{}, false, err
	}
	return out, found, nil
}

func (r *Skills) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
