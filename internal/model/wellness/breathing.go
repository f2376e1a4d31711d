package wellness

// Phase names walked by the breathing timer.
const (
	PhaseInhale    = "inhale"
	PhaseHold      = "hold"
	PhaseExhale    = "exhale"
	PhaseHoldAfter = "holdAfter"
)

// Pattern holds phase durations in seconds; zero means the phase is skipped.
type Pattern struct {
	Inhale    int `json:"inhale"`
	Hold      int `json:"hold,omitempty"`
	Exhale    int `json:"exhale"`
	HoldAfter int `json:"holdAfter,omitempty"`
}

// BreathingExercise is a guided breathing routine.
type BreathingExercise struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Pattern     Pattern `json:"pattern"`
}

// Phase is one step of a breathing plan.
type Phase struct {
	Name    string `json:"phase"`
	Seconds int    `json:"seconds"`
}

// Phases expands the pattern into the ordered steps of the given number of cycles.
func (e BreathingExercise) Phases(cycles int) []Phase {
	if cycles < 1 {
		cycles = 1
	}

	steps := []Phase{
		{Name: PhaseInhale, Seconds: e.Pattern.Inhale},
		{Name: PhaseHold, Seconds: e.Pattern.Hold},
		{Name: PhaseExhale, Seconds: e.Pattern.Exhale},
		{Name: PhaseHoldAfter, Seconds: e.Pattern.HoldAfter},
	}

	out := make([]Phase, 0, cycles*len(steps))
	for i := 0; i < cycles; i++ {
		for _, step := range steps {
			if step.Seconds > 0 {
				out = append(out, step)
			}
		}
	}
	return out
}

// CycleSeconds is the length of one full cycle.
func (e BreathingExercise) CycleSeconds() int {
	return e.Pattern.Inhale + e.Pattern.Hold + e.Pattern.Exhale + e.Pattern.HoldAfter
}

// SeedBreathingExercises provides the built-in routines.
func SeedBreathingExercises() []BreathingExercise {
	return []BreathingExercise{
		{
			ID:          "4-7-8",
			Name:        "4-7-8 Breathing",
			Description: "Inhale for 4, hold for 7, exhale for 8",
			Pattern:     Pattern{Inhale: 4, Hold: 7, Exhale: 8},
		},
		{
			ID:          "box",
			Name:        "Box Breathing",
			Description: "Equal 4-count breathing pattern",
			Pattern:     Pattern{Inhale: 4, Hold: 4, Exhale: 4, HoldAfter: 4},
		},
		{
			ID:          "deep",
			Name:        "Deep Breathing",
			Description: "Slow, deep breaths for relaxation",
			Pattern:     Pattern{Inhale: 6, Exhale: 6},
		},
	}
}
