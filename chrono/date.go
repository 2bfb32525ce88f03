// Package chrono provides calendar-safe date and duration values for the
// picker and heatmap widgets. All arithmetic is bounded to years 1-9998;
// operations that would leave that window report failure instead of
// producing a value.
package chrono

import (
	"fmt"
	"time"
)

const (
	// MinYear is the lowest representable year.
	MinYear = 1
	// MaxYear is the highest representable year.
	MaxYear = 9998
)

// DateFormat is the display and parse layout for dates.
const DateFormat = "2006-01-02"

// DateTimeFormat is the display and parse layout for date-times.
const DateTimeFormat = "2006-01-02 15:04:05"

// Date is a calendar date without a time component or location.
// The zero value is not a valid date; use IsZero to test for it.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a date, reporting false for invalid calendar dates
// (e.g. February 30th) or years outside [MinYear, MaxYear].
func NewDate(year int, month time.Month, day int) (Date, bool) {
	d := Date{year, month, day}
	if !d.Valid() {
		return Date{}, false
	}
	return d, true
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{y, m, d}
}

// ParseDate converts text in YYYY-MM-DD form. Malformed or impossible
// dates report false.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, false
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDateTime converts text in "YYYY-MM-DD HH:MM:SS" form into a local
// time. Malformed or impossible values report false.
func ParseDateTime(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateTimeFormat, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	if t.Year() < MinYear || t.Year() > MaxYear {
		return time.Time{}, false
	}
	return t, true
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names a real calendar date within bounds.
func (d Date) Valid() bool {
	if d.Year < MinYear || d.Year > MaxYear {
		return false
	}
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// Time returns midnight local time on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// ISOWeek returns the ISO 8601 year and week number for d.
func (d Date) ISOWeek() (year, week int) {
	return d.Time().ISOWeek()
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Add applies a calendar delta, normalizing month-end overflow the way
// time.AddDate does. Results outside the year bounds report false and
// the caller keeps its previous value.
func (d Date) Add(delta DateDelta) (Date, bool) {
	t := d.Time().AddDate(delta.Years, delta.Months, delta.Days)
	res := DateOf(t)
	if !res.Valid() {
		return Date{}, false
	}
	return res, true
}

// AddDays shifts d by a number of days.
func (d Date) AddDays(n int) (Date, bool) {
	return d.Add(DateDelta{Days: n})
}

// DaysUntil returns the whole-day distance from d to other. Negative when
// other is earlier. The subtraction happens in UTC so daylight-saving
// shifts in the local zone cannot skew the count.
func (d Date) DaysUntil(other Date) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Replace returns a copy of d with the day swapped out, reporting false
// when the result is not a real date in that month.
func (d Date) Replace(day int) (Date, bool) {
	return NewDate(d.Year, d.Month, day)
}

// DaysInMonth returns the day count of a month accounting for leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes backwards to the last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FromISOWeek resolves an ISO (year, week, weekday) triple to a date.
// weekday runs 1 (Monday) through 7 (Sunday). Reports false when the
// year has no such week (week 53 in short years) or inputs are outside
// the ISO ranges.
func FromISOWeek(year, week, weekday int) (Date, bool) {
	if week < 1 || week > 53 || weekday < 1 || weekday > 7 {
		return Date{}, false
	}
	if year < MinYear || year > MaxYear {
		return Date{}, false
	}
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := jan4.AddDate(0, 0, 1-wd)
	t := monday.AddDate(0, 0, (week-1)*7+(weekday-1))
	isoYear, isoWeek := t.ISOWeek()
	if isoYear != year || isoWeek != week {
		return Date{}, false
	}
	d := DateOf(t)
	if !d.Valid() {
		return Date{}, false
	}
	return d, true
}
