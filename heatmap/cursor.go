// Package heatmap renders a year of activity as a week-by-weekday tile
// grid and drives keyboard and mouse selection over it in three modes:
// single day, whole ISO week, or whole month.
package heatmap

import (
	"time"

	"tempus/chrono"
)

// Cursor addresses a position on the heatmap. Day runs 1-7 for
// weekdays; day 8 means the cursor addresses the whole week. A non-zero
// Month switches to month mode, addressing the whole month. The modes
// are mutually exclusive.
type Cursor struct {
	Week  int
	Day   int
	Month int
}

// IsDay reports day mode: a single weekday tile.
func (c Cursor) IsDay() bool { return !c.IsWeek() && c.Month == 0 }

// IsWeek reports week mode: the cursor covers one ISO week.
func (c Cursor) IsWeek() bool { return c.Day == 8 }

// IsMonth reports month mode: the cursor covers one calendar month.
func (c Cursor) IsMonth() bool { return c.Month != 0 }

// ToDate resolves the cursor against a display year. Month mode yields
// the first of the month; week 53 wraps into week 1 of the next year;
// otherwise the ISO (year, week, day) triple is resolved directly.
// Reports false when the implied ISO date does not exist; callers must
// also check the year when they need strictly in-year dates.
func (c Cursor) ToDate(year int) (chrono.Date, bool) {
	if c.IsMonth() {
		return chrono.NewDate(year, time.Month(c.Month), 1)
	}
	week := c.Week
	if week == 53 {
		week = 1
		year++
	}
	day := c.Day
	if c.IsWeek() {
		day = 1
	}
	return chrono.FromISOWeek(year, week, day)
}

// Move applies day/week deltas and returns the new cursor. When the day
// component lands on 9 (one step past week mode) the cursor transitions
// into month mode: the month comes from the date implied by the current
// position shifted by the week delta (clamped to 1-12), and the week is
// re-derived as the ISO week of the first of that month. Repeated week
// deltas in month mode step whole months through the same path. This is
// the only way into month mode.
func (c Cursor) Move(year, dayDelta, weekDelta int) Cursor {
	month := 0
	week := c.Week + weekDelta
	day := c.Day + dayDelta
	if day == 9 {
		var at chrono.Date
		if c.IsMonth() {
			d, ok := c.ToDate(year)
			if !ok {
				return c
			}
			at = d
		} else {
			w := week + 1
			if w > 52 {
				w = 52
			}
			if w < 1 {
				w = 1
			}
			d, ok := chrono.FromISOWeek(year, w, 1)
			if !ok {
				return c
			}
			at = d
		}
		month = int(at.Month) + weekDelta
		if month < 1 {
			month = 1
		}
		if month > 12 {
			month = 12
		}
		first, ok := chrono.NewDate(at.Year, time.Month(month), 1)
		if !ok {
			return c
		}
		_, week = first.ISOWeek()
	}
	return Cursor{Week: week, Day: day, Month: month}
}

// CanMove reports per-direction enablement so navigation stops at the
// grid edges instead of producing out-of-range cursors.
func (c Cursor) CanMove(dayDelta, weekDelta int) bool {
	switch {
	case weekDelta > 0:
		return c.Week < 53
	case weekDelta < 0:
		return c.Week > 1
	case dayDelta > 0:
		return c.Day < 9
	case dayDelta < 0:
		return c.Day > 1
	}
	return false
}
