package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
	"github.com/zhouzirui/wizcare/backend/internal/model/chat"
)

// companionPrompt is rendered with schema.FString; the placeholders are filled per request.
const companionPrompt = `You are WizCare, an empathetic AI mental health companion. Your role is to provide emotional support, active listening, and gentle guidance.

IMPORTANT CONTEXT:
- User's current stress level: {stress_context}
- You are NOT a medical professional and cannot provide medical advice
- Always encourage professional help for serious mental health concerns
- Keep responses warm, supportive, and under 100 words
- Use a caring, friend-like tone with appropriate emojis

CONVERSATION HISTORY:
{history}

USER'S MESSAGE: "{message}"

Please respond as WizCare with empathy and support, considering the stress level and conversation context. If this is a crisis situation (stress level: Very High), immediately provide crisis resources and encourage professional help.`

// PromptBuilder assembles the single-turn prompt sent to the generator.
type PromptBuilder struct {
	template prompt.ChatTemplate
}

// NewPromptBuilder creates a builder backed by the companion template.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		template: prompt.FromMessages(schema.FString, schema.UserMessage(companionPrompt)),
	}
}

// Build renders the prompt for message at the given stress level.
func (b *PromptBuilder) Build(ctx context.Context, level stress.Level, history []chat.HistoryEntry, message string) (string, error) {
	messages, err := b.template.Format(ctx, map[string]any{
		"stress_context": level.Context(),
		"history":        formatHistory(history),
		"message":        message,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render companion prompt: %w", err)
	}
	if len(messages) == 0 {
		return "", fmt.Errorf("companion prompt rendered no messages")
	}
	return messages[0].Content, nil
}

func formatHistory(history []chat.HistoryEntry) string {
	lines := make([]string, 0, len(history))
	for _, entry := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", entry.Role, entry.Content))
	}
	return strings.Join(lines, "\n")
}
