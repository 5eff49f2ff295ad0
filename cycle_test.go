package ampel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCycle_Waits(t *testing.T) {
	cycle := DefaultCycle()

	green, ok := cycle.StateOf(Green)
	require.True(t, ok)
	assert.Equal(t, 60*time.Second, green.Wait)

	yellow, ok := cycle.StateOf(Yellow)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, yellow.Wait)

	red, ok := cycle.StateOf(Red)
	require.True(t, ok)
	assert.Equal(t, 60*time.Second, red.Wait)
}

func TestDefaultCycle_Initial(t *testing.T) {
	cycle := DefaultCycle()
	assert.Equal(t, NewState(Green, 60*time.Second), cycle.Initial())
	assert.Equal(t, 3, cycle.Len())
}

func TestCycle_Next(t *testing.T) {
	cycle := DefaultCycle()

	tests := []struct {
		from Color
		to   Color
	}{
		{Green, Yellow},
		{Yellow, Red},
		{Red, Green},
	}

	for _, tt := range tests {
		from, ok := cycle.StateOf(tt.from)
		require.True(t, ok)
		next := cycle.Next(from)
		assert.Equal(t, tt.to, next.Color, "successor of %s", tt.from)
	}
}

func TestCycle_Closure(t *testing.T) {
	// Three steps from any starting state return the starting variant
	cycle := DefaultCycle()

	for _, start := range []Color{Green, Yellow, Red} {
		state, ok := cycle.StateOf(start)
		require.True(t, ok)

		result := state
		for i := 0; i < 3; i++ {
			result = cycle.Next(result)
		}
		assert.Equal(t, state, result, "cycle closure from %s", start)
	}
}

func TestCycle_LongSequence(t *testing.T) {
	cycle := DefaultCycle()
	pattern := []Color{Green, Yellow, Red}

	state := cycle.Initial()
	for i := 0; i < 1000; i++ {
		assert.Equal(t, pattern[i%3], state.Color, "variant at index %d", i)

		// Waits never drift, no matter how many cycles have elapsed
		expected, ok := cycle.StateOf(state.Color)
		require.True(t, ok)
		assert.Equal(t, expected.Wait, state.Wait, "wait at index %d", i)

		state = cycle.Next(state)
	}
}

func TestCycle_NextUnknownColorFallsBackToInitial(t *testing.T) {
	cycle := DefaultCycle()
	next := cycle.Next(NewState(Color(9), time.Second))
	assert.Equal(t, cycle.Initial(), next)
}

func TestCycle_PhasesIsACopy(t *testing.T) {
	cycle := DefaultCycle()
	phases := cycle.Phases()
	phases[0] = NewState(Red, time.Hour)
	assert.Equal(t, Green, cycle.Initial().Color)
}
