package wellness

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/wizcare/backend/internal/model/wellness"
)

var (
	ErrUnknownMood     = errors.New("unknown mood")
	ErrEmptyJournal    = errors.New("journal entry is empty")
	ErrUnknownExercise = errors.New("unknown breathing exercise")
)

// SessionChecker 在写入数据前确认聊天会话存在。
type SessionChecker interface {
	Exists(ctx context.Context, sessionID string) bool
}

// SessionCheckerFunc 将函数适配为 SessionChecker。
type SessionCheckerFunc func(ctx context.Context, sessionID string) bool

// Exists 实现 SessionChecker。
func (f SessionCheckerFunc) Exists(ctx context.Context, sessionID string) bool {
	return f(ctx, sessionID)
}

// ErrSessionNotFound 表示会话不存在。
var ErrSessionNotFound = errors.New("session not found")

// Service 在进程生命周期内保存心情打卡和日记。
type Service struct {
	mu       sync.RWMutex
	moods    map[string][]wellness.MoodCheckIn
	journals map[string][]wellness.JournalEntry

	sessions  SessionChecker
	options   []wellness.Mood
	exercises []wellness.BreathingExercise
}

// NewService 使用内置的工具目录创建健康服务。
func NewService(sessions SessionChecker) *Service {
	return &Service{
		moods:     make(map[string][]wellness.MoodCheckIn),
		journals:  make(map[string][]wellness.JournalEntry),
		sessions:  sessions,
		options:   wellness.SeedMoods(),
		exercises: wellness.SeedBreathingExercises(),
	}
}

// Moods 返回心情选项。
func (s *Service) Moods() []wellness.Mood {
	return append([]wellness.Mood(nil), s.options...)
}

// BreathingExercises 返回呼吸练习列表。
func (s *Service) BreathingExercises() []wellness.BreathingExercise {
	return append([]wellness.BreathingExercise(nil), s.exercises...)
}

// BreathingPlan 返回练习 id 在给定轮数下的阶段序列。
func (s *Service) BreathingPlan(id string, cycles int) ([]wellness.Phase, error) {
	for _, exercise := range s.exercises {
		if exercise.ID == id {
			return exercise.Phases(cycles), nil
		}
	}
	return nil, ErrUnknownExercise
}

// QuickResponses 返回快捷开场语。
func (s *Service) QuickResponses() []string {
	return wellness.SeedQuickResponses()
}

// Disclaimer 返回聊天前展示的免责声明。
func (s *Service) Disclaimer() wellness.Disclaimer {
	return wellness.SeedDisclaimer()
}

// CheckInMood 为会话记录一次心情打卡，label 不区分大小写，也可以是表情。
func (s *Service) CheckInMood(ctx context.Context, sessionID, label string) (wellness.MoodCheckIn, error) {
	if err := s.checkSession(ctx, sessionID); err != nil {
		return wellness.MoodCheckIn{}, err
	}

	mood, ok := s.findMood(label)
	if !ok {
		return wellness.MoodCheckIn{}, ErrUnknownMood
	}

	entry := wellness.MoodCheckIn{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Mood:      mood,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.moods[sessionID] = append(s.moods[sessionID], entry)
	s.mu.Unlock()

	return entry, nil
}

// ListMoods 按时间顺序返回会话的心情打卡。
func (s *Service) ListMoods(ctx context.Context, sessionID string) ([]wellness.MoodCheckIn, error) {
	if err := s.checkSession(ctx, sessionID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.MoodCheckIn{}, s.moods[sessionID]...), nil
}

// SaveJournal 为会话保存一篇日记。
func (s *Service) SaveJournal(ctx context.Context, sessionID, text string) (wellness.JournalEntry, error) {
	if err := s.checkSession(ctx, sessionID); err != nil {
		return wellness.JournalEntry{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return wellness.JournalEntry{}, ErrEmptyJournal
	}

	entry := wellness.JournalEntry{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.journals[sessionID] = append(s.journals[sessionID], entry)
	s.mu.Unlock()

	return entry, nil
}

// ListJournal 按时间顺序返回会话的日记。
func (s *Service) ListJournal(ctx context.Context, sessionID string) ([]wellness.JournalEntry, error) {
	if err := s.checkSession(ctx, sessionID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.JournalEntry{}, s.journals[sessionID]...), nil
}

func (s *Service) checkSession(ctx context.Context, sessionID string) error {
	if s.sessions != nil && !s.sessions.Exists(ctx, sessionID) {
		return ErrSessionNotFound
	}
	return nil
}

func (s *Service) findMood(label string) (wellness.Mood, bool) {
	label = strings.TrimSpace(label)
	for _, mood := range s.options {
		if strings.EqualFold(mood.Label, label) || mood.Emoji == label {
			return mood, true
		}
	}
	return wellness.Mood{}, false
}
