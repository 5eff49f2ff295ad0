package ampel

import (
	"fmt"
	"log/slog"
)

// Observer represents an entity that observes traffic light lifecycle
type Observer interface {
	// OnStateEnter is called when the light enters a state, including
	// the initial state on start
	OnStateEnter(state State)

	// OnTransition is called when the light advances from one state to
	// its successor
	OnTransition(from State, to State)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnStateExit is called when leaving a state
	OnStateExit(state State)

	// OnMachineStarted is called when the machine starts
	OnMachineStarted(id string)

	// OnMachineStopped is called when the machine stops
	OnMachineStopped(id string)

	// OnError is called when an error occurs during observation
	OnError(err error)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnStateEnter implements the required Observer method
func (o *BaseObserver) OnStateEnter(state State) {
	// Default implementation - no operation
}

// OnTransition implements the required Observer method
func (o *BaseObserver) OnTransition(from State, to State) {
	// Default implementation - no operation
}

// OnStateExit implements the optional ExtendedObserver method
func (o *BaseObserver) OnStateExit(state State) {
	// Default implementation - no operation
}

// OnMachineStarted implements the optional ExtendedObserver method
func (o *BaseObserver) OnMachineStarted(id string) {
	// Default implementation - no operation
}

// OnMachineStopped implements the optional ExtendedObserver method
func (o *BaseObserver) OnMachineStopped(id string) {
	// Default implementation - no operation
}

// OnError implements the optional ExtendedObserver method
func (o *BaseObserver) OnError(err error) {
	// Default implementation - no operation
}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// notify runs an observer callback with panic recovery so a misbehaving
// observer cannot crash the loop driver
func (om *ObserverManager) notify(observer Observer, method string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if extObs, ok := observer.(ExtendedObserver); ok {
				func() {
					defer func() { _ = recover() }()
					extObs.OnError(fmt.Errorf("observer panic in %s: %v", method, r))
				}()
			}
		}
	}()
	fn()
}

// NotifyStateEnter notifies all observers of state entry
func (om *ObserverManager) NotifyStateEnter(state State) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		observer := observer
		om.notify(observer, "OnStateEnter", func() {
			observer.OnStateEnter(state)
		})
	}
}

// NotifyTransition notifies all observers of a state transition
func (om *ObserverManager) NotifyTransition(from State, to State) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		observer := observer
		om.notify(observer, "OnTransition", func() {
			observer.OnTransition(from, to)
		})
	}
}

// NotifyStateExit notifies all observers of state exit
func (om *ObserverManager) NotifyStateExit(state State) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs := extObs
			om.notify(observer, "OnStateExit", func() {
				extObs.OnStateExit(state)
			})
		}
	}
}

// NotifyMachineStarted notifies all observers that the machine has started
func (om *ObserverManager) NotifyMachineStarted(id string) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnMachineStarted(id)
		}
	}
}

// NotifyMachineStopped notifies all observers that the machine has stopped
func (om *ObserverManager) NotifyMachineStopped(id string) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnMachineStopped(id)
		}
	}
}

// LoggingObserver emits one structured log line per observed state
type LoggingObserver struct {
	BaseObserver
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer on the default slog logger
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{logger: slog.Default()}
}

// NewLoggingObserverWith creates a logging observer on a custom logger
func NewLoggingObserverWith(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnStateEnter logs the active state and its wait duration
func (o *LoggingObserver) OnStateEnter(state State) {
	o.logger.Info("light is "+state.String(),
		"color", state.Color.String(),
		"wait", state.Wait,
	)
}

// OnTransition logs the completed transition
func (o *LoggingObserver) OnTransition(from State, to State) {
	o.logger.Debug("light changed",
		"from", from.Color.String(),
		"to", to.Color.String(),
	)
}

// OnMachineStarted logs machine start
func (o *LoggingObserver) OnMachineStarted(id string) {
	o.logger.Info("traffic light started", "machine", id)
}

// OnMachineStopped logs machine stop
func (o *LoggingObserver) OnMachineStopped(id string) {
	o.logger.Info("traffic light stopped", "machine", id)
}

// OnError logs observer errors
func (o *LoggingObserver) OnError(err error) {
	o.logger.Error("observer error", "error", err)
}
