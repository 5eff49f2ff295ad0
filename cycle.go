package ampel

import (
	"fmt"
	"time"
)

// Standard phase durations for the default cycle
const (
	DefaultGreenWait  = 60 * time.Second
	DefaultYellowWait = 10 * time.Second
	DefaultRedWait    = 60 * time.Second
)

// Cycle is the transition table of a traffic light: an ordered ring of
// phases where the successor of phase i is phase (i+1) mod n. The
// mapping is total over the phases it contains, so advancing through a
// cycle can never fail.
type Cycle struct {
	phases []State
	index  map[Color]int
}

// DefaultCycle returns the standard cycle
// Green(60s) -> Yellow(10s) -> Red(60s) -> Green(60s).
func DefaultCycle() *Cycle {
	cycle, err := NewCycleBuilder().
		Phase(Green, DefaultGreenWait).
		Phase(Yellow, DefaultYellowWait).
		Phase(Red, DefaultRedWait).
		Build()
	if err != nil {
		// The default table is a compile-time constant; this is unreachable
		panic(fmt.Sprintf("ampel: default cycle invalid: %v", err))
	}
	return cycle
}

// Initial returns the first phase of the cycle
func (c *Cycle) Initial() State {
	return c.phases[0]
}

// Len returns the number of phases in the cycle
func (c *Cycle) Len() int {
	return len(c.phases)
}

// Phases returns a copy of the cycle's phases in ring order
func (c *Cycle) Phases() []State {
	phases := make([]State, len(c.phases))
	copy(phases, c.phases)
	return phases
}

// Next returns the successor of the given state per the fixed ring
// order. The wait of the returned state always comes from the table, so
// durations stay invariant no matter how many cycles have elapsed. A
// color outside the cycle falls back to the initial phase; with the
// closed Color set and a validated builder this cannot happen.
func (c *Cycle) Next(current State) State {
	i, ok := c.index[current.Color]
	if !ok {
		return c.Initial()
	}
	return c.phases[(i+1)%len(c.phases)]
}

// StateOf returns the table entry for the given color
func (c *Cycle) StateOf(color Color) (State, bool) {
	i, ok := c.index[color]
	if !ok {
		return State{}, false
	}
	return c.phases[i], true
}
