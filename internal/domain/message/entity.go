package message

import "time"

// Message is an append-only chat line inside a match. Retrieval is always in
// ascending creation order; delivery is fetch-on-demand, there is no push.
type Message struct {
	ID        int64
	MatchID   int64
	SenderID  int64
	Content   string
	CreatedAt time.Time
}
