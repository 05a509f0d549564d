package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishimitra/krishimitra/internal/domain"
	"github.com/krishimitra/krishimitra/internal/genai"
	"github.com/krishimitra/krishimitra/internal/genai/demo"
	"github.com/krishimitra/krishimitra/internal/i18n"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCompleter records calls and returns a scripted reply.
type fakeCompleter struct {
	mu         sync.Mutex
	reply      string
	err        error
	calls      int
	lastPrompt string
	lastImage  *genai.Image
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, image *genai.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastPrompt = prompt
	f.lastImage = image
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// recordingChatStore captures every upserted snapshot.
type recordingChatStore struct {
	mu      sync.Mutex
	err     error
	upserts []*domain.Conversation
}

func (r *recordingChatStore) Upsert(_ context.Context, conv *domain.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	snapshot := *conv
	snapshot.Messages = append([]domain.Message(nil), conv.Messages...)
	r.upserts = append(r.upserts, &snapshot)
	return nil
}

func TestSendAppendsExchangeAndPersistsWholeLog(t *testing.T) {
	ai := &fakeCompleter{reply: "Plant ragi in June."}
	chatStore := &recordingChatStore{}
	svc := NewChatService(ai, chatStore, testLogger())
	sess := svc.NewSession(i18n.English)

	msg, err := svc.Send(context.Background(), sess, "When should I plant ragi?")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAI, msg.Role)
	assert.Equal(t, "Plant ragi in June.", msg.Content)
	assert.Contains(t, ai.lastPrompt, "When should I plant ragi?")
	assert.Contains(t, ai.lastPrompt, "Respond in English")
	assert.Nil(t, ai.lastImage)

	log := sess.Messages()
	require.Len(t, log, 2)
	assert.Equal(t, domain.RoleUser, log[0].Role)
	assert.Equal(t, domain.RoleAI, log[1].Role)

	require.Len(t, chatStore.upserts, 1)
	assert.Equal(t, sess.ID(), chatStore.upserts[0].SessionID)
	assert.Equal(t, "en", chatStore.upserts[0].Language)
	assert.Len(t, chatStore.upserts[0].Messages, 2)
}

func TestSendPersistsGrowingLogWithoutDuplicates(t *testing.T) {
	ai := &fakeCompleter{reply: "ok"}
	chatStore := &recordingChatStore{}
	svc := NewChatService(ai, chatStore, testLogger())
	sess := svc.NewSession(i18n.Kannada)

	for n := 1; n <= 3; n++ {
		_, err := svc.Send(context.Background(), sess, fmt.Sprintf("question %d", n))
		require.NoError(t, err)
	}

	require.Len(t, chatStore.upserts, 3)
	final := chatStore.upserts[2]
	require.Len(t, final.Messages, 6)
	for n := 0; n < 3; n++ {
		assert.Equal(t, fmt.Sprintf("question %d", n+1), final.Messages[2*n].Content)
		assert.Equal(t, domain.RoleAI, final.Messages[2*n+1].Role)
	}
}

func TestSendEmptyMessage(t *testing.T) {
	svc := NewChatService(&fakeCompleter{reply: "ok"}, &recordingChatStore{}, testLogger())
	sess := svc.NewSession(i18n.English)

	_, err := svc.Send(context.Background(), sess, "   ")
	assert.ErrorIs(t, err, ErrInputMissing)
	assert.Empty(t, sess.Messages())
}

func TestSendGatewayFailureAppendsErrorReply(t *testing.T) {
	ai := &fakeCompleter{err: genai.ErrUpstream}
	chatStore := &recordingChatStore{}
	svc := NewChatService(ai, chatStore, testLogger())
	sess := svc.NewSession(i18n.English)

	msg, err := svc.Send(context.Background(), sess, "help my crops")
	require.NoError(t, err)
	assert.Equal(t, i18n.T(i18n.English, "chat.errorReply"), msg.Content)
	assert.Equal(t, 1, ai.calls, "no retry on failure")

	// The log keeps both the question and the synthetic reply so the user
	// can retry, but the failed exchange is not persisted.
	require.Len(t, sess.Messages(), 2)
	assert.Empty(t, chatStore.upserts)
}

func TestSendDemoModeUsesKeywordRouter(t *testing.T) {
	chatStore := &recordingChatStore{}
	svc := NewChatService(nil, chatStore, testLogger())
	sess := svc.NewSession(i18n.Hindi)

	msg, err := svc.Send(context.Background(), sess, "How do I control pests?")
	require.NoError(t, err)
	assert.Equal(t, demo.ChatResponse(i18n.Hindi, "How do I control pests?"), msg.Content)
	require.Len(t, chatStore.upserts, 1)
}

func TestSendPersistenceFailureDoesNotBlockReply(t *testing.T) {
	chatStore := &recordingChatStore{err: errors.New("db locked")}
	svc := NewChatService(&fakeCompleter{reply: "fine"}, chatStore, testLogger())
	sess := svc.NewSession(i18n.English)

	msg, err := svc.Send(context.Background(), sess, "hello")
	require.NoError(t, err)
	assert.Equal(t, "fine", msg.Content)
}

func TestReplyOneShot(t *testing.T) {
	ai := &fakeCompleter{reply: "advice"}
	svc := NewChatService(ai, &recordingChatStore{}, testLogger())

	text, err := svc.Reply(context.Background(), i18n.Kannada, "which fertilizer?")
	require.NoError(t, err)
	assert.Equal(t, "advice", text)
	assert.Contains(t, ai.lastPrompt, "Respond in Kannada")
}

func TestReplyEmptyMessage(t *testing.T) {
	svc := NewChatService(nil, &recordingChatStore{}, testLogger())

	_, err := svc.Reply(context.Background(), i18n.English, "")
	assert.ErrorIs(t, err, ErrInputMissing)
}

func TestReplyUpstreamFailure(t *testing.T) {
	svc := NewChatService(&fakeCompleter{err: genai.ErrUpstream}, &recordingChatStore{}, testLogger())

	_, err := svc.Reply(context.Background(), i18n.English, "hello")
	assert.ErrorIs(t, err, genai.ErrUpstream)
}

func TestDemoModeForAllLanguages(t *testing.T) {
	svc := NewChatService(nil, &recordingChatStore{}, testLogger())

	for _, lang := range i18n.Languages {
		text, err := svc.Reply(context.Background(), lang, "tell me something")
		require.NoError(t, err)
		assert.NotEmpty(t, text, "lang=%s", lang)
	}
}

func TestNewSessionIDsAreSessionScoped(t *testing.T) {
	assert.Regexp(t, `^session_\d+$`, NewSessionID())
}
