package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
	"github.com/zhouzirui/wizcare/backend/internal/model/chat"
)

func TestPromptBuilderEmbedsContext(t *testing.T) {
	builder := NewPromptBuilder()
	history := []chat.HistoryEntry{
		{Role: chat.RoleUser, Content: "work is a lot"},
		{Role: chat.RoleAssistant, Content: "that sounds heavy"},
		{Role: chat.RoleUser, Content: "I am so stressed {really}"},
	}

	got, err := builder.Build(context.Background(), stress.Medium, history, "I am so stressed {really}")
	require.NoError(t, err)

	assert.Contains(t, got, "You are WizCare")
	assert.Contains(t, got, stress.Medium.Context())
	assert.Contains(t, got, "NOT a medical professional")
	assert.Contains(t, got, "under 100 words")
	assert.Contains(t, got, "user: work is a lot\nassistant: that sounds heavy\nuser: I am so stressed {really}")
	assert.Contains(t, got, `USER'S MESSAGE: "I am so stressed {really}"`)
}

func TestPromptBuilderEmptyHistory(t *testing.T) {
	got, err := NewPromptBuilder().Build(context.Background(), stress.None, nil, "hello")
	require.NoError(t, err)
	assert.Contains(t, got, "No stress detected")
}
