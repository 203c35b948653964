package clock

import "time"

// Clock abstracts the system clock so workflows can stamp CreatedAt and
// UpdatedAt deterministically under test
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
