package ampel

import "time"

// Clock is the time source a machine waits on. The default system clock
// delegates to package time; tests substitute a fake so timed behavior
// can be checked without real sleeping.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

// NewSystemClock returns a Clock backed by package time
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
