package pickers

import (
	"time"

	"tempus/chrono"
)

// DateSelectedMsg reports a calendar cell selection. Alt carries the
// modifier so range pickers can route it to the opposite endpoint.
type DateSelectedMsg struct {
	Date chrono.Date
	Alt  bool
}

// DateChangedMsg reports a picker's committed date value. A false Ok
// means the value was cleared.
type DateChangedMsg struct {
	Date chrono.Date
	Ok   bool
}

// DateTimeChangedMsg reports a picker's committed date-time value.
type DateTimeChangedMsg struct {
	Time time.Time
	Ok   bool
}

// RangeChangedMsg reports the endpoints of a range picker after a
// reconciling update.
type RangeChangedMsg struct {
	Start   chrono.Date
	StartOk bool
	End     chrono.Date
	EndOk   bool
}

// TimeRangeChangedMsg reports the endpoints of a date-time duration
// picker after a reconciling update.
type TimeRangeChangedMsg struct {
	Start   time.Time
	StartOk bool
	End     time.Time
	EndOk   bool
}

// DurationChangedMsg reports the duration value between a picker's
// endpoints.
type DurationChangedMsg struct {
	Duration time.Duration
	Ok       bool
}

// LockToggledMsg reports a range picker's lock state change.
type LockToggledMsg struct{ Locked bool }
