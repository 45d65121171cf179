// Package clock provides ports.Clock implementations.
package clock

import "time"

// Func adapts a function to ports.Clock.
type Func func() time.Time

// Now returns the current time according to f.
func (f Func) Now() time.Time {
	return f()
}

// System is the wall clock, in UTC.
func System() Func {
	return func() time.Time { return time.Now().UTC() }
}

// Fixed always returns t.
func Fixed(t time.Time) Func {
	return func() time.Time { return t }
}
