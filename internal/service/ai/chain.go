package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// finishReasonContentFilter is reported by OpenAI-compatible endpoints (Ark included) on moderation.
const finishReasonContentFilter = "content_filter"

// ChainGenerator drives any eino chat model through a compiled chain.
// It backs the Ark provider.
type ChainGenerator struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewChainGenerator compiles a template → model chain around chatModel.
func NewChainGenerator(ctx context.Context, chatModel model.BaseChatModel) (*ChainGenerator, error) {
	if chatModel == nil {
		return nil, ErrCredentialMissing
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &ChainGenerator{chain: runnable}, nil
}

// Generate runs the chain once. Ark has no per-request safety thresholds, so
// moderation is detected from the finish reason instead.
func (g *ChainGenerator) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	response, err := g.chain.Invoke(ctx, map[string]any{"prompt": prompt},
		compose.WithChatModelOption(
			model.WithTemperature(params.Temperature),
			model.WithTopP(params.TopP),
			model.WithMaxTokens(int(params.MaxOutputTokens)),
		),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", networkError(err)
		}
		return "", networkError(fmt.Errorf("failed to run AI chain: %w", err))
	}
	if response == nil {
		return "", malformedError("chain returned no message")
	}

	if response.ResponseMeta != nil && response.ResponseMeta.FinishReason == finishReasonContentFilter {
		return "", safetyError("response filtered by provider")
	}

	text := strings.TrimSpace(response.Content)
	if text == "" {
		return "", malformedError("chain returned empty content")
	}
	return text, nil
}
