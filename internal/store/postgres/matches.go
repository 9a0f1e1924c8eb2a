package postgres

import (
	"context"

	"skillswap/internal/database"
	"skillswap/internal/domain/match"
)

const matchColumns = `id, teacher_id, learner_id, skill_id, status, created_at, updated_at`

type Matches struct {
	db database.DB
}

func NewMatches(db database.DB) *Matches {
	return &Matches{db: db}
}

func scanMatch(sc scanner) (match.Match, error) {
	var m match.Match
	err := sc.Scan(&m.ID, &m.TeacherID, &m.LearnerID, &m.SkillID, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *Matches) Get(ctx context.Context, id int64) (match.Match, bool, error) {
	m, err := scanMatch(r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, err
	}
	return m, true, nil
}

func (r *Matches) List(ctx context.Context, pred func(match.Match) bool) ([]match.Match, error) {
	rows, err := r.db.Query(ctx, `SELECT `+matchColumns+` FROM matches ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
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

func (r *Matches) Create(ctx context.Context, m match.Match) (match.Match, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO matches (teacher_id, learner_id, skill_id, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		m.TeacherID, m.LearnerID, m.SkillID, m.Status,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return match.Match{}, err
	}
	return m, nil
}

func (r *Matches) Update(ctx context.Context, id int64, apply func(match.Match) match.Match) (match.Match, bool, error) {
	var out match.Match
	found := false
	err := inTx(ctx, r.db, func(tx database.Tx) error {
		m, err := scanMatch(tx.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return err
		}
		found = true

		m = apply(m)
		row := tx.QueryRow(ctx,
			`UPDATE matches SET status = $1, updated_at = now() WHERE id = $2 RETURNING updated_at`,
			m.Status, id,
		)
		if err := row.Scan(&m.UpdatedAt); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return match.Match{}, false, err
	}
	return out, found, nil
}
