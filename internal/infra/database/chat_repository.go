package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/safe-leads/internal/entity"
)

type ChatRepository struct {
	DB *sql.DB
}

func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) Create(ctx context.Context, m *entity.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, session_id, sender, message, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.DB.ExecContext(ctx, query, m.ID, m.SessionID, m.Sender, m.Message, m.CreatedAt); err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *ChatRepository) ListBySession(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	query := `
		SELECT id, session_id, sender, message, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	messages := []*entity.ChatMessage{}
	for rows.Next() {
		m := &entity.ChatMessage{}
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Sender, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
