package ampel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleBuilder_Build(t *testing.T) {
	cycle, err := NewCycleBuilder().
		Phase(Red, 5*time.Second).
		Phase(Green, 7*time.Second).
		Build()

	require.NoError(t, err)
	assert.Equal(t, 2, cycle.Len())
	assert.Equal(t, NewState(Red, 5*time.Second), cycle.Initial())
	assert.Equal(t, Green, cycle.Next(cycle.Initial()).Color)
	assert.Equal(t, Red, cycle.Next(NewState(Green, 7*time.Second)).Color)
}

func TestCycleBuilder_TooFewPhases(t *testing.T) {
	_, err := NewCycleBuilder().
		Phase(Green, time.Second).
		Build()

	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Equal(t, ErrCodeInvalidConfiguration, GetErrorCode(err))
}

func TestCycleBuilder_DuplicateColor(t *testing.T) {
	_, err := NewCycleBuilder().
		Phase(Green, time.Second).
		Phase(Green, 2*time.Second).
		Build()

	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "duplicate phase")
}

func TestCycleBuilder_NegativeWait(t *testing.T) {
	_, err := NewCycleBuilder().
		Phase(Green, -time.Second).
		Phase(Red, time.Second).
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative wait")
}

func TestCycleBuilder_UnknownColor(t *testing.T) {
	_, err := NewCycleBuilder().
		Phase(Color(9), time.Second).
		Phase(Red, time.Second).
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color")
}

func TestCycleBuilder_ZeroWaitIsAllowed(t *testing.T) {
	cycle, err := NewCycleBuilder().
		Phase(Yellow, 0).
		Phase(Red, time.Second).
		Build()

	require.NoError(t, err)
	state, ok := cycle.StateOf(Yellow)
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), state.Wait)
}
