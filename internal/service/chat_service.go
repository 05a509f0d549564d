package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/krishimitra/krishimitra/internal/domain"
	"github.com/krishimitra/krishimitra/internal/genai"
	"github.com/krishimitra/krishimitra/internal/genai/demo"
	"github.com/krishimitra/krishimitra/internal/i18n"
)

// conversationStore is the subset of store.ChatStore that ChatService requires.
type conversationStore interface {
	Upsert(ctx context.Context, conv *domain.Conversation) error
}

// ChatService answers farming questions through the AI gateway and persists
// conversation logs. A nil Completer puts the service in demo mode: the
// gateway is never called and replies come from the canned keyword router.
type ChatService struct {
	ai     genai.Completer
	store  conversationStore
	logger *slog.Logger
}

func NewChatService(ai genai.Completer, store conversationStore, logger *slog.Logger) *ChatService {
	return &ChatService{ai: ai, store: store, logger: logger}
}

// ChatSession holds one conversation's state. Each session is an explicit
// object handed to callers, so concurrent sessions cannot interfere. The
// mutex serializes sends within a session, which keeps every reply directly
// after its question in the log.
type ChatSession struct {
	id       string
	language i18n.Language

	mu       sync.Mutex
	messages []domain.Message
}

// NewSessionID mints a session identifier. It only needs to be unique per
// client session, not globally.
func NewSessionID() string {
	return fmt.Sprintf("session_%d", time.Now().UnixMilli())
}

func (s *ChatService) NewSession(lang i18n.Language) *ChatSession {
	return &ChatSession{id: NewSessionID(), language: lang}
}

func (sess *ChatSession) ID() string { return sess.id }

func (sess *ChatSession) Language() i18n.Language { return sess.language }

// Messages returns a copy of the conversation log.
func (sess *ChatSession) Messages() []domain.Message {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]domain.Message, len(sess.messages))
	copy(out, sess.messages)
	return out
}

// Reply answers a single question without session state. It is the one-shot
// path the HTTP proxy uses.
func (s *ChatService) Reply(ctx context.Context, lang i18n.Language, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrInputMissing
	}
	if s.ai == nil {
		return demo.ChatResponse(lang, message), nil
	}
	text, err := s.ai.Complete(ctx, genai.ChatPrompt(lang, message), nil)
	if err != nil {
		return "", fmt.Errorf("failed to process chat message: %w", err)
	}
	return text, nil
}

// Send appends the user's message to the session log, obtains a reply, and
// persists the whole accumulated log keyed on the session id. On a gateway
// failure a synthetic error reply is appended in place of the answer and no
// retry is attempted; the log is only persisted after successful exchanges.
// A failed save is logged and never blocks the reply (best-effort policy).
func (s *ChatService) Send(ctx context.Context, sess *ChatSession, text string) (domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, ErrInputMissing
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.messages = append(sess.messages, domain.Message{
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: time.Now().UTC(),
	})

	reply, err := s.reply(ctx, sess.language, text)
	failed := err != nil
	if failed {
		s.logger.Error("chat completion failed", "session_id", sess.id, "error", err)
		reply = i18n.T(sess.language, "chat.errorReply")
	}

	aiMsg := domain.Message{
		Role:      domain.RoleAI,
		Content:   reply,
		Timestamp: time.Now().UTC(),
	}
	sess.messages = append(sess.messages, aiMsg)

	if !failed {
		s.persistLocked(ctx, sess)
	}
	return aiMsg, nil
}

func (s *ChatService) reply(ctx context.Context, lang i18n.Language, message string) (string, error) {
	if s.ai == nil {
		return demo.ChatResponse(lang, message), nil
	}
	return s.ai.Complete(ctx, genai.ChatPrompt(lang, message), nil)
}

// persistLocked writes the whole log; callers hold sess.mu.
func (s *ChatService) persistLocked(ctx context.Context, sess *ChatSession) {
	conv := &domain.Conversation{
		SessionID: sess.id,
		Messages:  sess.messages,
		Language:  string(sess.language),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.Upsert(ctx, conv); err != nil {
		s.logger.Error("failed to persist conversation", "session_id", sess.id, "error", err)
	}
}
