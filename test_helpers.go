package ampel

import (
	"sync"
	"testing"
	"time"
)

// TestObserver is a mock observer for testing that captures all observer
// events
type TestObserver struct {
	mutex       sync.RWMutex
	Transitions []TransitionEvent
	StateEnters []State
	StateExits  []State
	Started     []string
	Stopped     []string
	Errors      []error
}

// TransitionEvent records one observed transition
type TransitionEvent struct {
	From State
	To   State
}

// NewTestObserver creates a new test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{
		Transitions: make([]TransitionEvent, 0),
		StateEnters: make([]State, 0),
		StateExits:  make([]State, 0),
		Started:     make([]string, 0),
		Stopped:     make([]string, 0),
		Errors:      make([]error, 0),
	}
}

func (o *TestObserver) OnStateEnter(state State) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.StateEnters = append(o.StateEnters, state)
}

func (o *TestObserver) OnTransition(from State, to State) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Transitions = append(o.Transitions, TransitionEvent{From: from, To: to})
}

func (o *TestObserver) OnStateExit(state State) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.StateExits = append(o.StateExits, state)
}

func (o *TestObserver) OnMachineStarted(id string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Started = append(o.Started, id)
}

func (o *TestObserver) OnMachineStopped(id string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Stopped = append(o.Stopped, id)
}

func (o *TestObserver) OnError(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Errors = append(o.Errors, err)
}

// Reset clears all captured events
func (o *TestObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Transitions = nil
	o.StateEnters = nil
	o.StateExits = nil
	o.Started = nil
	o.Stopped = nil
	o.Errors = nil
}

// TransitionCount returns the number of observed transitions
func (o *TestObserver) TransitionCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Transitions)
}

// StateEnterCount returns the number of observed state entries
func (o *TestObserver) StateEnterCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.StateEnters)
}

// LastTransition returns the most recent observed transition
func (o *TestObserver) LastTransition() *TransitionEvent {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(o.Transitions) == 0 {
		return nil
	}
	return &o.Transitions[len(o.Transitions)-1]
}

// EnteredColors returns the colors of all observed state entries in order
func (o *TestObserver) EnteredColors() []Color {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	colors := make([]Color, len(o.StateEnters))
	for i, state := range o.StateEnters {
		colors[i] = state.Color
	}
	return colors
}

// FakeClock is a Clock whose waits complete immediately while recording
// the requested durations, so timed behavior is testable without real
// sleeping. Fake time still advances by each requested duration.
type FakeClock struct {
	mutex sync.Mutex
	now   time.Time
	waits []time.Duration
}

// NewFakeClock creates a fake clock starting at the given instant
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake time
func (c *FakeClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.now
}

// After records the wait, advances fake time by d and fires immediately
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mutex.Lock()
	c.waits = append(c.waits, d)
	c.now = c.now.Add(d)
	now := c.now
	c.mutex.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// Sleep simply waits on After(d)
func (c *FakeClock) Sleep(d time.Duration) {
	<-c.After(d)
}

// Waits returns all recorded wait durations in request order
func (c *FakeClock) Waits() []time.Duration {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	waits := make([]time.Duration, len(c.waits))
	copy(waits, c.waits)
	return waits
}

// CreateTestMachine creates a started machine on the default cycle with
// a fake clock, for tests that advance through states
func CreateTestMachine(t *testing.T) (*TrafficLight, *FakeClock) {
	t.Helper()
	clock := NewFakeClock(time.Unix(0, 0))
	machine := NewDefault().WithClock(clock)
	if err := machine.Start(); err != nil {
		t.Fatalf("Expected no error starting machine, got: %v", err)
	}
	return machine, clock
}

// AssertColor checks if machine is in the expected color
func AssertColor(t *testing.T, machine Machine, expected Color) {
	t.Helper()
	current := machine.Current()
	if current.Color != expected {
		t.Errorf("Expected color %s, got %s", expected, current.Color)
	}
}

// AssertState checks if machine is in the expected state, wait included
func AssertState(t *testing.T, machine Machine, expected State) {
	t.Helper()
	current := machine.Current()
	if current != expected {
		t.Errorf("Expected state %s, got %s", expected, current)
	}
}
