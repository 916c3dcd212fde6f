package clock

import "time"

// Clock supplies the current time. Engine code never calls time.Now directly.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function into a Clock.
type ClockFunc func() time.Time

// Now returns the function result in UTC. A nil ClockFunc falls back to the
// wall clock.
func (f ClockFunc) Now() time.Time {
	if f == nil {
		return time.Now().UTC()
	}
	return f().UTC()
}

// System is the wall clock in UTC.
var System Clock = ClockFunc(nil)

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
