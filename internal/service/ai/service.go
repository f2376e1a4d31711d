package ai

import (
	"context"
	"fmt"

	"github.com/zhouzirui/wizcare/backend/internal/config"
)

// NewGenerator builds the configured remote generator wrapped in the retry policy.
// It returns ErrCredentialMissing when the provider has no usable credential.
func NewGenerator(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	if !cfg.Enabled() {
		return nil, ErrCredentialMissing
	}

	var (
		base Generator
		err  error
	)
	switch cfg.Provider {
	case config.ProviderArk:
		chatModel, modelErr := cfg.NewChatModel(ctx)
		if modelErr != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", modelErr)
		}
		base, err = NewChainGenerator(ctx, chatModel)
	default:
		base, err = NewGeminiGenerator(ctx, GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
	}
	if err != nil {
		return nil, err
	}

	return WithRetry(base, RetryPolicy{MaxRetries: cfg.MaxRetries}), nil
}
