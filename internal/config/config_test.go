package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AI_PROVIDER", "GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
		"ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "Model",
		"AI_TIMEOUT", "AI_MAX_RETRIES", "AI_RATE_LIMIT", "AI_RATE_BURST", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultsToFallbackOnlyMode(t *testing.T) {
	clearAIEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.False(t, cfg.AI.Enabled())
	assert.Equal(t, 12*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 2, cfg.AI.MaxRetries)
}

func TestPlaceholderKeyCountsAsMissing(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("GEMINI_API_KEY", PlaceholderAPIKey)

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.AI.Enabled())

	t.Setenv("GEMINI_API_KEY", "real-key")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.AI.Enabled())
}

func TestArkProviderNeedsModel(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("AI_PROVIDER", "ark")
	t.Setenv("ARK_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.AI.Enabled())

	t.Setenv("Model", "doubao-lite")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("AI_PROVIDER", "openai")
	_, err := Load()
	assert.Error(t, err)

	clearAIEnv(t)
	t.Setenv("AI_TIMEOUT", "soon")
	_, err = Load()
	assert.Error(t, err)

	clearAIEnv(t)
	t.Setenv("PORT", "80 80")
	_, err = Load()
	assert.Error(t, err)
}

func TestTimeoutAcceptsSeconds(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("AI_TIMEOUT", "15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.AI.Timeout)
}
