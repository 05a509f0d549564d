package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/krishimitra/krishimitra/internal/domain"
)

// ChatStore persists conversation snapshots keyed on session id. The whole
// message log is replaced on every write, so repeated upserts with a growing
// log are idempotent and self-healing.
type ChatStore struct {
	db *sql.DB
}

func NewChatStore(db *sql.DB) *ChatStore {
	return &ChatStore{db: db}
}

func (s *ChatStore) Upsert(ctx context.Context, conv *domain.Conversation) error {
	messages, err := json.Marshal(conv.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO chat_conversations (session_id, messages, language, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			messages   = excluded.messages,
			language   = excluded.language,
			updated_at = excluded.updated_at
	`, conv.SessionID, string(messages), conv.Language, conv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert conversation: %w", err)
	}
	return nil
}

func (s *ChatStore) GetBySessionID(ctx context.Context, sessionID string) (*domain.Conversation, error) {
	conv := &domain.Conversation{}
	var messages string
	err := s.db.QueryRowContext(ctx, `
		SELECT session_id, messages, language, updated_at
		FROM chat_conversations WHERE session_id = ?
	`, sessionID).Scan(&conv.SessionID, &messages, &conv.Language, &conv.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	if err := json.Unmarshal([]byte(messages), &conv.Messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	return conv, nil
}
