package ampel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachineError(t *testing.T) {
	err := NewMachineNotStartedError("Advance")
	assert.Equal(t, "machine error during Advance: machine is not started", err.Error())
	assert.Equal(t, ErrCodeMachineNotStarted, err.Code)
	assert.True(t, IsMachineError(err))

	err = NewMachineAlreadyStartedError("Start")
	assert.Equal(t, ErrCodeMachineAlreadyStarted, err.Code)
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("CycleBuilder", "a cycle needs at least two phases")
	assert.Equal(t, "configuration error in CycleBuilder: a cycle needs at least two phases", err.Error())
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsMachineError(err))
}

func TestColorErrorHelpers(t *testing.T) {
	err := NewColorError("unknown color 'Purple'")
	assert.True(t, IsColorError(err))
	assert.Equal(t, ErrCodeInvalidColor, GetErrorCode(err))
}

func TestGetErrorCode_Unknown(t *testing.T) {
	assert.Equal(t, ErrCodeNone, GetErrorCode(errors.New("plain")))
	assert.Equal(t, ErrCodeNone, GetErrorCode(nil))
}
