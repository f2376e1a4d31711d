package ai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationErrorMatching(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", statusError(503, errors.New("unavailable")))

	assert.ErrorIs(t, err, ErrRemoteStatus)
	assert.ErrorIs(t, err, &GenerationError{Kind: KindRemoteStatus, Code: 503})
	assert.NotErrorIs(t, err, &GenerationError{Kind: KindRemoteStatus, Code: 404})
	assert.NotErrorIs(t, err, ErrNetworkFailure)
	assert.Equal(t, KindRemoteStatus, KindOf(err))
	assert.Contains(t, err.Error(), "remote_status(503)")
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
	assert.Equal(t, KindSafetyBlocked, KindOf(safetyError("blocked")))
}
