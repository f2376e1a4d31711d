package chat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
	chatmodel "github.com/zhouzirui/wizcare/backend/internal/model/chat"
	"github.com/zhouzirui/wizcare/backend/internal/service/ai"
	chat "github.com/zhouzirui/wizcare/backend/internal/service/chat"
	"github.com/zhouzirui/wizcare/backend/internal/service/reply"
)

// The opencensus view worker is started at init by the genai dependency chain.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type echoGenerator struct{}

func (echoGenerator) Generate(ctx context.Context, prompt string, params ai.Params) (string, error) {
	return "remote reply", nil
}

// blockingResponder parks inside Respond until released.
type blockingResponder struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingResponder) Respond(ctx context.Context, text string, level stress.Level, history *chatmodel.History) reply.Reply {
	close(b.entered)
	<-b.release
	return reply.Reply{Text: "done", Level: level, Source: reply.SourceFallback}
}

func newFallbackService() *chat.Service {
	return chat.NewService(reply.NewService(nil, reply.Config{}, nil), nil)
}

func TestServiceGetSession(t *testing.T) {
	svc := newFallbackService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, stress.None, got.CurrentLevel)
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := newFallbackService()

	_, err := svc.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, chat.ErrSessionNotFound)

	_, err = svc.Submit(context.Background(), "missing", "hello", nil)
	assert.ErrorIs(t, err, chat.ErrSessionNotFound)
}

func TestSubmitAppendsBothMessagesInOrder(t *testing.T) {
	svc := newFallbackService()
	ctx := context.Background()
	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	var events []chat.EventType
	exchange, err := svc.Submit(ctx, session.ID, "  I am so stressed and tired  ", func(e chat.Event) {
		events = append(events, e.Type)
	})
	require.NoError(t, err)

	assert.Equal(t, "I am so stressed and tired", exchange.UserMessage.Text)
	assert.Equal(t, stress.Medium, exchange.Stress.Level)
	assert.Equal(t, reply.SourceFallback, exchange.Source)
	assert.Contains(t, reply.FallbackSet(stress.Medium), exchange.Reply.Text)
	assert.False(t, exchange.Emergency)
	assert.Equal(t, []chat.EventType{chat.EventStress, chat.EventTyping, chat.EventReply, chat.EventTyping}, events)

	transcript, err := svc.LoadTranscript(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, chatmodel.SenderUser, transcript[0].Sender)
	assert.Equal(t, chatmodel.SenderBot, transcript[1].Sender)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, stress.Medium, got.CurrentLevel)
}

func TestSubmitCriticalSignalsOnce(t *testing.T) {
	for name, responder := range map[string]chat.Responder{
		"fallback": reply.NewService(nil, reply.Config{}, nil),
		"remote":   reply.NewService(echoGenerator{}, reply.Config{}, nil),
	} {
		t.Run(name, func(t *testing.T) {
			svc := chat.NewService(responder, nil)
			ctx := context.Background()
			session, err := svc.CreateSession(ctx)
			require.NoError(t, err)

			critical := 0
			exchange, err := svc.Submit(ctx, session.ID, "I want to die", func(e chat.Event) {
				if e.Type == chat.EventCritical {
					critical++
				}
			})
			require.NoError(t, err)
			assert.True(t, exchange.Emergency)
			assert.Equal(t, 1, critical)

			critical = 0
			_, err = svc.Submit(ctx, session.ID, "hello", func(e chat.Event) {
				if e.Type == chat.EventCritical {
					critical++
				}
			})
			require.NoError(t, err)
			assert.Zero(t, critical)
		})
	}
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	responder := &blockingResponder{entered: make(chan struct{}), release: make(chan struct{})}
	svc := chat.NewService(responder, nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, session.ID, "first", nil)
		done <- err
	}()

	<-responder.entered
	_, err = svc.Submit(ctx, session.ID, "second", nil)
	assert.ErrorIs(t, err, chat.ErrSessionBusy)

	close(responder.release)
	require.NoError(t, <-done)

	transcript, err := svc.LoadTranscript(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, transcript, 2)
}

func TestSubmitRejectsEmptyText(t *testing.T) {
	svc := newFallbackService()
	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), session.ID, "   ", nil)
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestResetClearsHistoryButKeepsTranscript(t *testing.T) {
	svc := chat.NewService(reply.NewService(echoGenerator{}, reply.Config{}, nil), nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID, "I feel lonely", nil)
	require.NoError(t, err)

	history, err := svc.History(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []chatmodel.HistoryEntry{
		{Role: chatmodel.RoleUser, Content: "I feel lonely"},
		{Role: chatmodel.RoleAssistant, Content: "remote reply"},
	}, history)

	require.NoError(t, svc.Reset(ctx, session.ID))

	history, err = svc.History(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	transcript, err := svc.LoadTranscript(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, transcript, 2)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, stress.None, got.CurrentLevel)

	assert.ErrorIs(t, svc.Reset(ctx, "missing"), chat.ErrSessionNotFound)
}

func TestHistoryStaysBounded(t *testing.T) {
	svc := chat.NewService(reply.NewService(echoGenerator{}, reply.Config{}, nil), nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		_, err := svc.Submit(ctx, session.ID, "hello again", nil)
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, history, chatmodel.HistoryCapacity)
}

func TestServiceExists(t *testing.T) {
	svc := newFallbackService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	assert.True(t, svc.Exists(ctx, session.ID))
	assert.False(t, svc.Exists(ctx, "missing"))
}
