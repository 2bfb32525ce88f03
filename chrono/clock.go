package chrono

import "time"

// Clock supplies the current time. Widgets take a Clock instead of
// reading the wall clock so "jump to today" behavior is testable.
type Clock func() time.Time

// SystemClock reads the wall clock in the local zone.
func SystemClock() time.Time { return time.Now() }

// FixedClock always reports the same instant.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today returns the clock's current calendar date.
func (c Clock) Today() Date {
	return DateOf(c())
}

// Now returns the clock's current instant.
func (c Clock) Now() time.Time {
	return c()
}
