package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewChatMessage(sessionID, sender, message string) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Sender:    sender,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

type ChatRepositoryInterface interface {
	Create(ctx context.Context, msg *ChatMessage) error
	// ListBySession returns the session's messages oldest first.
	ListBySession(ctx context.Context, sessionID string) ([]*ChatMessage, error)
}
