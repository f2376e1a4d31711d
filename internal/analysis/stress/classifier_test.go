package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Level
	}{
		{name: "crisis", text: "I want to die", want: Critical},
		{name: "crisis beats lower words", text: "I want to die but today I feel okay and good", want: Critical},
		{name: "medium", text: "I am so stressed and tired", want: Medium},
		{name: "low", text: "I feel okay today", want: Low},
		{name: "none", text: "hello", want: None},
		{name: "empty", text: "   ", want: None},
		{name: "high wins over low", text: "I feel hopeless, nothing gets better", want: High},
		{name: "literal substring false positive", text: "I hate crying", want: High},
		{name: "high wins over medium", text: "stressed and so lonely", want: High},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.text))
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("suicide"), Classify("SUICIDE"))
	assert.Equal(t, Critical, Classify("SUICIDE"))
	assert.Equal(t, Medium, Classify("So AnXiOuS right now"))
}

func TestClampOutOfRange(t *testing.T) {
	assert.Equal(t, None, Clamp(-1))
	assert.Equal(t, None, Clamp(9))
	assert.Equal(t, High, Clamp(3))
	assert.False(t, Level(7).Valid())
}

func TestMeterLegend(t *testing.T) {
	legend := Meter()
	if assert.Len(t, legend, len(Levels)) {
		assert.Equal(t, 0, legend[0].Percent)
		assert.Equal(t, 100, legend[len(legend)-1].Percent)
		assert.Equal(t, "Very High", legend[len(legend)-1].Name)
	}
	assert.Equal(t, GaugeFor(None).Color, GaugeFor(Level(42)).Color)
}

func TestGaugeForOutOfRangeIsNone(t *testing.T) {
	for _, l := range []Level{-3, 5, 42} {
		g := GaugeFor(l)
		assert.Equal(t, None, g.Level)
		assert.Equal(t, 0, g.Percent)
	}
	assert.Equal(t, 75, GaugeFor(High).Percent)
}
