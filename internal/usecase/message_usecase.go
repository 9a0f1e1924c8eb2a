package usecase

import (
	"context"
	"strings"

	"skillswap/internal/domain/message"
	"skillswap/internal/store"
)

type MessageUsecase interface {
	ListMessages(ctx context.Context, userID, matchID int64) ([]message.Message, error)
	SendMessage(ctx context.Context, userID, matchID int64, content string) (message.Message, error)
}

type Messages struct {
	matches  store.MatchStore
	messages store.MessageStore
}

func NewMessageUsecase(matches store.MatchStore, messages store.MessageStore) *Messages {
	return &Messages{matches: matches, messages: messages}
}

// ListMessages returns the match's messages in ascending creation order.
// Delivery is polling; callers refetch to see new messages.
func (u *Messages) ListMessages(ctx context.Context, userID, matchID int64) ([]message.Message, error) {
	if err := u.requireParticipant(ctx, userID, matchID); err != nil {
		return nil, err
	}
	msgs, err := u.messages.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, ErrInternal
	}
	return msgs, nil
}

func (u *Messages) SendMessage(ctx context.Context, userID, matchID int64, content string) (message.Message, error) {
	if strings.TrimSpace(content) == "" {
		return message.Message{}, ErrInvalidInput
	}
	if err := u.requireParticipant(ctx, userID, matchID); err != nil {
		return message.Message{}, err
	}

	created, err := u.messages.Create(ctx, message.Message{
		MatchID:  matchID,
		SenderID: userID,
		Content:  content,
	})
	if err != nil {
		return message.Message{}, ErrInternal
	}
	return created, nil
}

func (u *Messages) requireParticipant(ctx context.Context, userID, matchID int64) error {
	m, found, err := u.matches.Get(ctx, matchID)
	if err != nil {
		return ErrInternal
	}
	if !found {
		return ErrMatchNotFound
	}
	if !m.Involves(userID) {
		return ErrForbidden
	}
	return nil
}
