// Package ampel models a traffic light as a cyclic timed state machine:
// Green -> Yellow -> Red -> Green, forever. Each state carries the
// duration the light holds it; advancing blocks for that duration and
// then replaces the state with its successor from the cycle's
// transition table.
package ampel

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Machine represents a traffic light instance
type Machine interface {
	ID() string

	Start() error
	Stop() error
	Reset() error

	Current() State
	Advance() (State, error)
	Run(ctx context.Context) error

	AddObserver(observer Observer)
	RemoveObserver(observer Observer)
}

// MachineState represents the lifecycle state of the machine
type MachineState int

const (
	// Machine is stopped and not advancing
	MachineStateStopped MachineState = iota
	// Machine is running and advancing through the cycle
	MachineStateStarted
)

// TrafficLight implements the Machine interface. The light owns exactly
// one current state; the only suspension point is the wait performed
// once per advance.
type TrafficLight struct {
	id           string
	cycle        *Cycle
	clock        Clock
	current      State
	machineState MachineState
	observers    *ObserverManager
	mutex        sync.RWMutex
}

// New creates a traffic light driven by the given cycle
func New(cycle *Cycle) *TrafficLight {
	return &TrafficLight{
		id:        uuid.New().String(),
		cycle:     cycle,
		clock:     NewSystemClock(),
		current:   cycle.Initial(),
		observers: NewObserverManager(),
	}
}

// NewDefault creates a traffic light with the standard cycle, starting
// at Green(60s)
func NewDefault() *TrafficLight {
	return New(DefaultCycle())
}

// WithClock substitutes the time source the light waits on
func (tl *TrafficLight) WithClock(clock Clock) *TrafficLight {
	tl.clock = clock
	return tl
}

// ID returns the unique identifier of this instance
func (tl *TrafficLight) ID() string {
	return tl.id
}

// Start starts the machine at the cycle's initial state
func (tl *TrafficLight) Start() error {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	if tl.machineState == MachineStateStarted {
		return NewMachineAlreadyStartedError("Start")
	}

	tl.machineState = MachineStateStarted
	tl.current = tl.cycle.Initial()

	tl.observers.NotifyStateEnter(tl.current)
	tl.observers.NotifyMachineStarted(tl.id)

	return nil
}

// Stop stops the machine
func (tl *TrafficLight) Stop() error {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	if tl.machineState != MachineStateStarted {
		return NewMachineNotStartedError("Stop")
	}

	tl.observers.NotifyStateExit(tl.current)
	tl.observers.NotifyMachineStopped(tl.id)

	tl.machineState = MachineStateStopped
	return nil
}

// Reset returns the machine to the cycle's initial state and stops it
func (tl *TrafficLight) Reset() error {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	previous := tl.current
	tl.current = tl.cycle.Initial()
	tl.machineState = MachineStateStopped

	if previous != tl.current {
		tl.observers.NotifyStateExit(previous)
		tl.observers.NotifyStateEnter(tl.current)
		tl.observers.NotifyTransition(previous, tl.current)
	}

	return nil
}

// Current returns the active state
func (tl *TrafficLight) Current() State {
	tl.mutex.RLock()
	defer tl.mutex.RUnlock()
	return tl.current
}

// Advance blocks for the current state's wait duration, then replaces
// the state with its successor per the fixed cycle and returns it. The
// mapping is total: the only possible error is advancing a machine that
// is not started.
func (tl *TrafficLight) Advance() (State, error) {
	current, err := tl.snapshot()
	if err != nil {
		return State{}, err
	}

	tl.clock.Sleep(current.Wait)

	return tl.step(current)
}

// Run drives the machine until the context is cancelled. The wait of
// each iteration honours cancellation so the loop can exit cleanly when
// the process is told to terminate; the machine itself has no terminal
// state.
func (tl *TrafficLight) Run(ctx context.Context) error {
	for {
		current, err := tl.snapshot()
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tl.clock.After(current.Wait):
		}

		if _, err := tl.step(current); err != nil {
			return err
		}
	}
}

// snapshot returns the current state, failing if the machine is stopped
func (tl *TrafficLight) snapshot() (State, error) {
	tl.mutex.RLock()
	defer tl.mutex.RUnlock()

	if tl.machineState != MachineStateStarted {
		return State{}, NewMachineNotStartedError("Advance")
	}
	return tl.current, nil
}

// step replaces the current state with the successor of from and
// notifies observers. The machine may have been stopped while the
// caller was waiting, so the lifecycle is re-checked under the lock.
func (tl *TrafficLight) step(from State) (State, error) {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	if tl.machineState != MachineStateStarted {
		return State{}, NewMachineNotStartedError("Advance")
	}

	next := tl.cycle.Next(from)
	tl.current = next

	tl.observers.NotifyStateExit(from)
	tl.observers.NotifyTransition(from, next)
	tl.observers.NotifyStateEnter(next)

	return next, nil
}

// AddObserver adds an observer to the machine
func (tl *TrafficLight) AddObserver(observer Observer) {
	tl.observers.AddObserver(observer)
}

// RemoveObserver removes an observer from the machine
func (tl *TrafficLight) RemoveObserver(observer Observer) {
	tl.observers.RemoveObserver(observer)
}
