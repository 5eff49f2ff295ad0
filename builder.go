package ampel

import (
	"fmt"
	"time"
)

// CycleBuilder provides a fluent interface for assembling a Cycle
type CycleBuilder interface {
	Phase(color Color, wait time.Duration) CycleBuilder
	Build() (*Cycle, error)
}

type cycleBuilderImpl struct {
	phases []State
}

// NewCycleBuilder creates a new cycle builder
func NewCycleBuilder() CycleBuilder {
	return &cycleBuilderImpl{
		phases: make([]State, 0),
	}
}

// Phase appends a phase to the ring in declaration order
func (cb *cycleBuilderImpl) Phase(color Color, wait time.Duration) CycleBuilder {
	cb.phases = append(cb.phases, NewState(color, wait))
	return cb
}

// Build validates the configuration and constructs the final cycle
func (cb *cycleBuilderImpl) Build() (*Cycle, error) {
	if err := cb.validate(); err != nil {
		return nil, err
	}

	phases := make([]State, len(cb.phases))
	copy(phases, cb.phases)

	index := make(map[Color]int, len(phases))
	for i, phase := range phases {
		index[phase.Color] = i
	}

	return &Cycle{phases: phases, index: index}, nil
}

// validate checks the cycle configuration
func (cb *cycleBuilderImpl) validate() error {
	if len(cb.phases) < 2 {
		return NewConfigurationError("CycleBuilder", "a cycle needs at least two phases")
	}

	seen := make(map[Color]bool, len(cb.phases))
	for _, phase := range cb.phases {
		if !phase.Color.IsValid() {
			return NewConfigurationError("CycleBuilder", fmt.Sprintf("unknown color %d", int(phase.Color)))
		}
		if seen[phase.Color] {
			return NewConfigurationError("CycleBuilder", fmt.Sprintf("duplicate phase for color '%s'", phase.Color))
		}
		seen[phase.Color] = true

		if phase.Wait < 0 {
			return NewConfigurationError("CycleBuilder", fmt.Sprintf("negative wait %s for color '%s'", phase.Wait, phase.Color))
		}
	}

	return nil
}
