package clock

import "time"

// Clock is the time source used to stamp users, games, players, and
// moves. Services take it as a dependency so tests can pin the clock.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
