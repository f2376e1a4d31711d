package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
	"github.com/zhouzirui/wizcare/backend/internal/model/chat"
	"github.com/zhouzirui/wizcare/backend/internal/service/reply"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionBusy     = errors.New("a reply is already in progress for this session")
	ErrEmptyMessage    = errors.New("message text is required")
)

// Responder produces a reply for one classified message.
type Responder interface {
	Respond(ctx context.Context, text string, level stress.Level, history *chat.History) reply.Reply
}

// Exchange is everything one submission produced.
type Exchange struct {
	UserMessage chat.Message `json:"userMessage"`
	Reply       chat.Message `json:"reply"`
	Stress      stress.Gauge `json:"stress"`
	Source      reply.Source `json:"source"`
	Emergency   bool         `json:"emergency"`
}

type sessionState struct {
	mu       sync.RWMutex
	session  chat.Session
	messages []chat.Message

	// historyMu is held for the whole remote call so Reset cannot interleave with it.
	historyMu sync.Mutex
	history   *chat.History

	inFlight atomic.Bool
}

// Service encapsulates conversation state management.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState

	responder Responder
	classify  func(string) stress.Level
	now       func() time.Time
	logger    *zap.Logger
}

// NewService bootstraps the in-memory chat service.
func NewService(responder Responder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sessions:  make(map[string]*sessionState),
		responder: responder,
		classify:  stress.Classify,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger.Named("chat"),
	}
}

// CreateSession provisions an anonymous session.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	session := chat.Session{
		ID:           uuid.NewString(),
		CreatedAt:    s.now(),
		CurrentLevel: stress.None,
	}

	s.mu.Lock()
	s.sessions[session.ID] = &sessionState{
		session:  session,
		messages: make([]chat.Message, 0, 16),
		history:  chat.NewHistory(chat.HistoryCapacity),
	}
	s.mu.Unlock()

	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	state, err := s.lookup(sessionID)
	if err != nil {
		return chat.Session{}, err
	}

	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.session, nil
}

// Exists reports whether sessionID refers to a live session.
func (s *Service) Exists(_ context.Context, sessionID string) bool {
	_, err := s.lookup(sessionID)
	return err == nil
}

// LoadTranscript returns stored messages for the provided session.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) ([]chat.Message, error) {
	state, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	state.mu.RLock()
	defer state.mu.RUnlock()

	copied := make([]chat.Message, len(state.messages))
	copy(copied, state.messages)
	return copied, nil
}

// History returns the model context currently buffered for the session.
func (s *Service) History(_ context.Context, sessionID string) ([]chat.HistoryEntry, error) {
	state, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	state.historyMu.Lock()
	defer state.historyMu.Unlock()
	return state.history.Entries(), nil
}

// Reset clears the model context and the current stress level. The transcript is kept.
func (s *Service) Reset(_ context.Context, sessionID string) error {
	state, err := s.lookup(sessionID)
	if err != nil {
		return err
	}

	state.historyMu.Lock()
	state.history.Reset()
	state.historyMu.Unlock()

	state.mu.Lock()
	state.session.CurrentLevel = stress.None
	state.mu.Unlock()

	s.logger.Debug("session reset", zap.String("session", sessionID))
	return nil
}

// Submit runs one user message through classify → respond → append.
// Only one submission per session may be in flight; a concurrent call gets ErrSessionBusy.
func (s *Service) Submit(ctx context.Context, sessionID, text string, notify func(Event)) (Exchange, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Exchange{}, ErrEmptyMessage
	}

	state, err := s.lookup(sessionID)
	if err != nil {
		return Exchange{}, err
	}

	if !state.inFlight.CompareAndSwap(false, true) {
		return Exchange{}, ErrSessionBusy
	}
	defer state.inFlight.Store(false)

	if notify == nil {
		notify = func(Event) {}
	}

	level := s.classify(text)
	gauge := stress.GaugeFor(level)
	userMsg := s.newMessage(sessionID, chat.SenderUser, text, level)

	state.mu.Lock()
	state.messages = append(state.messages, userMsg)
	state.session.CurrentLevel = level
	state.mu.Unlock()

	notify(s.newEvent(EventStress, sessionID, gauge))
	notify(s.newEvent(EventTyping, sessionID, TypingState{Typing: true}))

	state.historyMu.Lock()
	result := s.responder.Respond(ctx, text, level, state.history)
	state.historyMu.Unlock()

	botMsg := s.newMessage(sessionID, chat.SenderBot, result.Text, level)

	state.mu.Lock()
	state.messages = append(state.messages, botMsg)
	state.mu.Unlock()

	s.logger.Info("reply produced",
		zap.String("session", sessionID),
		zap.Int("level", int(level)),
		zap.String("source", string(result.Source)),
	)

	notify(s.newEvent(EventReply, sessionID, botMsg))
	if result.Emergency {
		notify(s.newEvent(EventCritical, sessionID, gauge))
	}
	notify(s.newEvent(EventTyping, sessionID, TypingState{Typing: false}))

	return Exchange{
		UserMessage: userMsg,
		Reply:       botMsg,
		Stress:      gauge,
		Source:      result.Source,
		Emergency:   result.Emergency,
	}, nil
}

func (s *Service) lookup(sessionID string) (*sessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

func (s *Service) newMessage(sessionID string, sender chat.Sender, text string, level stress.Level) chat.Message {
	return chat.Message{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Text:        text,
		Sender:      sender,
		StressLevel: level,
		CreatedAt:   s.now(),
	}
}

func (s *Service) newEvent(eventType EventType, sessionID string, data any) Event {
	return Event{
		Type:      eventType,
		SessionID: sessionID,
		Data:      data,
		Timestamp: s.now().UnixMilli(),
	}
}
