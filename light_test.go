package ampel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_String(t *testing.T) {
	assert.Equal(t, "Green", Green.String())
	assert.Equal(t, "Yellow", Yellow.String())
	assert.Equal(t, "Red", Red.String())
	assert.Equal(t, "Color(9)", Color(9).String())
}

func TestColor_IsValid(t *testing.T) {
	assert.True(t, Green.IsValid())
	assert.True(t, Yellow.IsValid())
	assert.True(t, Red.IsValid())
	assert.False(t, Color(9).IsValid())
}

func TestParseColor(t *testing.T) {
	color, err := ParseColor("Yellow")
	require.NoError(t, err)
	assert.Equal(t, Yellow, color)

	_, err = ParseColor("Purple")
	require.Error(t, err)
	assert.True(t, IsColorError(err))
	assert.Equal(t, ErrCodeInvalidColor, GetErrorCode(err))
}

func TestColor_TextRoundTrip(t *testing.T) {
	text, err := Red.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Red", string(text))

	var color Color
	require.NoError(t, color.UnmarshalText(text))
	assert.Equal(t, Red, color)

	_, err = Color(9).MarshalText()
	require.Error(t, err)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Green(1m0s)", NewState(Green, 60*time.Second).String())
	assert.Equal(t, "Yellow(10s)", NewState(Yellow, 10*time.Second).String())
}
