package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEMAFirstUpdateTakesFullValue(t *testing.T) {
	e := NewEMA(0.1)
	e.Update(5)
	require.InDelta(t, 5, e.Value(), 1e-9)
}

func TestEMAConvergesTowardSamples(t *testing.T) {
	e := NewEMA(0.5)
	for i := 0; i < 50; i++ {
		e.Update(3)
	}
	require.InDelta(t, 3, e.Value(), 1e-6)
}

func TestEMABetaNeverUndershootsAlpha(t *testing.T) {
	e := NewEMA(0.3)
	for i := 0; i < 20; i++ {
		e.Update(1)
	}
	require.GreaterOrEqual(t, e.beta, e.alpha)
}

func TestEMABetaWarmupScheduleMatchesOneTwoTwoFourFourFourFour(t *testing.T) {
	e := NewEMA(1e-6)
	var used []float64
	for i := 0; i < 7; i++ {
		used = append(used, e.beta)
		e.Update(1)
	}
	require.Equal(t, []float64{1, 0.5, 0.5, 0.25, 0.25, 0.25, 0.25}, used)
}
