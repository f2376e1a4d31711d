package ai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RetryPolicy bounds retries of transient remote failures.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// RetryingGenerator retries transient failures with exponential backoff.
type RetryingGenerator struct {
	next   Generator
	policy RetryPolicy
}

// WithRetry wraps next with policy. A non-positive BaseDelay defaults to 500ms.
func WithRetry(next Generator, policy RetryPolicy) *RetryingGenerator {
	if policy.BaseDelay <= 0 {
		policy.BaseDelay = 500 * time.Millisecond
	}
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	return &RetryingGenerator{next: next, policy: policy}
}

// Generate calls the wrapped generator until it succeeds, fails permanently,
// runs out of attempts or ctx is done.
func (g *RetryingGenerator) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	var err error
	for attempt := 0; attempt <= g.policy.MaxRetries; attempt++ {
		var text string
		text, err = g.next.Generate(ctx, prompt, params)
		if err == nil {
			return text, nil
		}
		if !isRetriable(err) || attempt == g.policy.MaxRetries {
			return "", err
		}

		wait := g.policy.BaseDelay << uint(attempt)
		zap.L().Debug("retrying remote generation",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.String("kind", string(KindOf(err))),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", networkError(ctx.Err())
		case <-timer.C:
		}
	}
	return "", err
}

func isRetriable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		return false
	}

	switch genErr.Kind {
	case KindNetworkFailure:
		return true
	case KindRemoteStatus:
		return genErr.Code == http.StatusTooManyRequests || genErr.Code >= http.StatusInternalServerError
	default:
		return false
	}
}
