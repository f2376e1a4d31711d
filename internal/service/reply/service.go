package reply

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
	"github.com/zhouzirui/wizcare/backend/internal/model/chat"
	"github.com/zhouzirui/wizcare/backend/internal/service/ai"
)

// Source 标识回复来自远端模型还是本地兜底。
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// errRateLimited 表示远端调用配额已用完。
var errRateLimited = errors.New("remote generation rate limited")

// Config 控制回复服务的远端调用行为。
type Config struct {
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

// Reply 是一次 Respond 调用的结果。
type Reply struct {
	Text      string       `json:"text"`
	Level     stress.Level `json:"level"`
	Source    Source       `json:"source"`
	Emergency bool         `json:"emergency"`
	// Err 是导致兜底的远端错误，不会返回给用户。
	Err error `json:"-"`
}

// Service 生成陪伴回复：优先远端模型，失败时使用本地兜底。
type Service struct {
	generator ai.Generator
	prompts   *ai.PromptBuilder
	params    ai.Params
	timeout   time.Duration
	limiter   *rate.Limiter
	fallback  func(stress.Level) string
	logger    *zap.Logger
}

// NewService 创建回复服务。generator 为 nil 时只使用兜底回复。
func NewService(generator ai.Generator, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 12 * time.Second
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &Service{
		generator: generator,
		prompts:   ai.NewPromptBuilder(),
		params:    ai.DefaultParams(),
		timeout:   timeout,
		limiter:   rate.NewLimiter(limit, burst),
		fallback:  Fallback,
		logger:    logger.Named("reply"),
	}
}

// Enabled 返回是否配置了远端生成。
func (s *Service) Enabled() bool {
	return s != nil && s.generator != nil
}

// Respond 为给定等级的文本生成回复，远端路径会更新 history；history 为 nil 时使用临时缓冲。
// 它不会失败：任何远端错误都降级为兜底回复。
func (s *Service) Respond(ctx context.Context, text string, level stress.Level, history *chat.History) Reply {
	if !s.Enabled() {
		return s.fallbackReply(level, ai.ErrCredentialMissing)
	}
	if !s.limiter.Allow() {
		return s.fallbackReply(level, errRateLimited)
	}
	if history == nil {
		history = chat.NewHistory(0)
	}

	history.Append(chat.RoleUser, text)

	generated, err := s.generate(ctx, text, level, history)
	if err != nil {
		return s.fallbackReply(level, err)
	}

	history.Append(chat.RoleAssistant, generated)
	return Reply{
		Text:      generated,
		Level:     level,
		Source:    SourceRemote,
		Emergency: level == stress.Critical,
	}
}

func (s *Service) generate(ctx context.Context, text string, level stress.Level, history *chat.History) (string, error) {
	prompt, err := s.prompts.Build(ctx, level, history.Entries(), text)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	generated, err := s.generator.Generate(callCtx, prompt, s.params)
	if err != nil {
		if ai.KindOf(err) == "" {
			err = &ai.GenerationError{Kind: ai.KindNetworkFailure, Err: err}
		}
		return "", err
	}

	generated = strings.TrimSpace(generated)
	if generated == "" {
		return "", &ai.GenerationError{Kind: ai.KindMalformedResponse, Err: errors.New("empty reply")}
	}
	return generated, nil
}

func (s *Service) fallbackReply(level stress.Level, cause error) Reply {
	kind := string(ai.KindOf(cause))
	if kind == "" {
		kind = cause.Error()
	}

	if errors.Is(cause, ai.ErrCredentialMissing) {
		s.logger.Debug("remote generation disabled, using fallback", zap.Int("level", int(level)))
	} else {
		s.logger.Warn("remote generation failed, using fallback",
			zap.String("kind", kind),
			zap.Int("level", int(level)),
			zap.Error(cause),
		)
	}

	return Reply{
		Text:      s.fallback(level),
		Level:     level,
		Source:    SourceFallback,
		Emergency: level == stress.Critical,
		Err:       cause,
	}
}
