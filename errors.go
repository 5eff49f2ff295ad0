package ampel

import "fmt"

// ErrorCode represents specific error conditions in the machine
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Machine is not in started state
	ErrCodeMachineNotStarted
	// Machine is already started
	ErrCodeMachineAlreadyStarted
	// Machine configuration is invalid
	ErrCodeInvalidConfiguration
	// Color is not one of the closed set
	ErrCodeInvalidColor
)

// MachineError represents machine lifecycle errors. The transition
// mapping itself is total over the closed color set, so only lifecycle
// misuse can produce errors.
type MachineError struct {
	Code      ErrorCode
	Operation string
	Message   string
}

func (e *MachineError) Error() string {
	return fmt.Sprintf("machine error during %s: %s", e.Operation, e.Message)
}

// NewMachineNotStartedError creates a new machine not started error
func NewMachineNotStartedError(operation string) *MachineError {
	return &MachineError{
		Code:      ErrCodeMachineNotStarted,
		Operation: operation,
		Message:   "machine is not started",
	}
}

// NewMachineAlreadyStartedError creates a new machine already started error
func NewMachineAlreadyStartedError(operation string) *MachineError {
	return &MachineError{
		Code:      ErrCodeMachineAlreadyStarted,
		Operation: operation,
		Message:   "machine is already started",
	}
}

// ConfigurationError represents cycle or machine configuration issues
type ConfigurationError struct {
	Component string
	Issue     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(component, issue string) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Issue:     issue,
	}
}

// ColorError represents an attempt to use a color outside the closed set
type ColorError struct {
	Message string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("color error: %s", e.Message)
}

// NewColorError creates a new color error
func NewColorError(message string) *ColorError {
	return &ColorError{Message: message}
}

// IsMachineError checks if an error is a MachineError
func IsMachineError(err error) bool {
	_, ok := err.(*MachineError)
	return ok
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// IsColorError checks if an error is a ColorError
func IsColorError(err error) bool {
	_, ok := err.(*ColorError)
	return ok
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	switch e := err.(type) {
	case *MachineError:
		return e.Code
	case *ConfigurationError:
		return ErrCodeInvalidConfiguration
	case *ColorError:
		return ErrCodeInvalidColor
	default:
		return ErrCodeNone
	}
}
