package wellness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onlySession(id string) SessionChecker {
	return SessionCheckerFunc(func(_ context.Context, sessionID string) bool {
		return sessionID == id
	})
}

func TestCheckInMood(t *testing.T) {
	svc := NewService(onlySession("s1"))
	ctx := context.Background()

	entry, err := svc.CheckInMood(ctx, "s1", "anxious")
	require.NoError(t, err)
	assert.Equal(t, "Anxious", entry.Mood.Label)

	_, err = svc.CheckInMood(ctx, "s1", "😴")
	require.NoError(t, err)

	_, err = svc.CheckInMood(ctx, "s1", "ecstatic")
	assert.ErrorIs(t, err, ErrUnknownMood)

	_, err = svc.CheckInMood(ctx, "other", "Happy")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	moods, err := svc.ListMoods(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, moods, 2)
	assert.Equal(t, "Tired", moods[1].Mood.Label)
}

func TestJournal(t *testing.T) {
	svc := NewService(onlySession("s1"))
	ctx := context.Background()

	_, err := svc.SaveJournal(ctx, "s1", "  ")
	assert.ErrorIs(t, err, ErrEmptyJournal)

	entry, err := svc.SaveJournal(ctx, "s1", " today was long ")
	require.NoError(t, err)
	assert.Equal(t, "today was long", entry.Text)

	entries, err := svc.ListJournal(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	empty, err := NewService(nil).ListJournal(ctx, "anything")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBreathingPlan(t *testing.T) {
	svc := NewService(nil)

	plan, err := svc.BreathingPlan("4-7-8", 1)
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, 8, plan[2].Seconds)

	_, err = svc.BreathingPlan("yoga", 1)
	assert.ErrorIs(t, err, ErrUnknownExercise)
}
