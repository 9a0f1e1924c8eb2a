package postgres

import (
	"context"

	"skillswap/internal/database"
	"skillswap/internal/domain/message"
)

const messageColumns = `id, match_id, sender_id, content, created_at`

type Messages struct {
	db database.DB
}

func NewMessages(db database.DB) *Messages {
	return &Messages{db: db}
}

func scanMessage(sc scanner) (message.Message, error) {
	var m message.Message
	err := sc.Scan(&m.ID, &m.MatchID, &m.SenderID, &m.Content, &m.CreatedAt)
	return m, err
}

func (r *Messages) Get(ctx context.Context, id int64) (message.Message, bool, error) {
	m, err := scanMessage(r.db.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return message.Message{}, false, nil
		}
		return message.Message{}, false, err
	}
	return m, true, nil
}

func (r *Messages) ListByMatch(ctx context.Context, matchID int64) ([]message.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE match_id = $1 ORDER BY created_at ASC, id ASC`,
		matchID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]message.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Messages) Create(ctx context.Context, m message.Message) (message.Message, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO messages (match_id, sender_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		m.MatchID, m.SenderID, m.Content,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		return message.Message{}, err
	}
	return m, nil
}
