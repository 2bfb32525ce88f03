package pickers

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
)

// A mask pattern spells the expected input shape: 'D' slots take a
// digit, anything else is a literal auto-inserted while typing. The
// paired limits string caps the digit allowed at each slot, so a month
// can never start with 2 nor a minute with 6.
const (
	dateMask       = "DDDD-DD-DD"
	dateLimits     = "9999-19-39"
	dateTimeMask   = "DDDD-DD-DD DD:DD:DD"
	dateTimeLimits = "9999-19-39 29:59:59"
	durationMask   = "DD:DD:DD"
	durationLimits = "99:59:59"
)

// appendDigit grows a masked value by one digit, inserting any literal
// separators the pattern calls for first. Digits above the slot's limit
// are rejected.
func appendDigit(value, pattern, limits string, r rune) (string, bool) {
	if r < '0' || r > '9' {
		return value, false
	}
	for len(value) < len(pattern) && pattern[len(value)] != 'D' {
		value += string(pattern[len(value)])
	}
	if len(value) >= len(pattern) || r > rune(limits[len(value)]) {
		return value, false
	}
	return value + string(r), true
}

// trimBack removes the trailing digit and any literals exposed by it.
func trimBack(value, pattern string) string {
	if value == "" {
		return value
	}
	value = value[:len(value)-1]
	for len(value) > 0 && pattern[len(value)-1] != 'D' {
		value = value[:len(value)-1]
	}
	return value
}

func newMaskedTextInput(pattern string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = strings.ReplaceAll(pattern, "D", "0")
	ti.CharLimit = len(pattern)
	ti.Width = len(pattern)
	return ti
}

// DateInput is a masked YYYY-MM-DD entry with spinbox adjustment: up
// and down offset the date component under the cursor, rejecting any
// result that is not a calendar date.
type DateInput struct {
	clock chrono.Clock
	input textinput.Model
	date  *chrono.Date
}

// NewDateInput creates an empty date entry.
func NewDateInput(clock chrono.Clock) *DateInput {
	if clock == nil {
		clock = chrono.SystemClock
	}
	return &DateInput{clock: clock, input: newMaskedTextInput(dateMask)}
}

// Date returns the committed value.
func (d *DateInput) Date() (chrono.Date, bool) {
	if d.date == nil {
		return chrono.Date{}, false
	}
	return *d.date, true
}

// SetDate installs a value and its text form.
func (d *DateInput) SetDate(date chrono.Date) {
	d.date = &date
	d.input.SetValue(date.String())
	d.input.CursorEnd()
}

// Clear drops the value and the text.
func (d *DateInput) Clear() {
	d.date = nil
	d.input.SetValue("")
}

func (d *DateInput) Focus() tea.Cmd { return d.input.Focus() }
func (d *DateInput) Blur()          { d.input.Blur() }
func (d *DateInput) Focused() bool  { return d.input.Focused() }

// Adjust offsets the component under the cursor by delta: positions
// 0-3 the year, 5-6 the month, 8 onward the day. With no value yet the
// clock's today seeds the edit. An out-of-range result is rejected and
// the prior value kept.
func (d *DateInput) Adjust(delta int) bool {
	base := d.clock.Today()
	if d.date != nil {
		base = *d.date
	}
	year, month, day := base.Year, base.Month, base.Day
	switch pos := d.input.Position(); {
	case pos <= 4:
		year += delta
	case pos <= 7:
		month += time.Month(delta)
	default:
		day += delta
	}
	next, ok := chrono.NewDate(year, month, day)
	if !ok {
		return false
	}
	pos := d.input.Position()
	d.SetDate(next)
	d.input.SetCursor(pos)
	return true
}

func (d *DateInput) Update(msg tea.Msg) (*DateInput, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !d.input.Focused() {
		return d, nil
	}
	switch key.String() {
	case "up":
		d.Adjust(1)
	case "down":
		d.Adjust(-1)
	case "backspace":
		d.setText(trimBack(d.input.Value(), dateMask))
	case "left", "right", "home", "end":
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(key)
		return d, cmd
	default:
		if key.Type == tea.KeyRunes {
			text := d.input.Value()
			for _, r := range key.Runes {
				if next, ok := appendDigit(text, dateMask, dateLimits, r); ok {
					text = next
				}
			}
			d.setText(text)
		}
	}
	return d, nil
}

// setText updates the display text and reparses the committed value.
// Incomplete or invalid text leaves the prior value in place; empty
// text clears it.
func (d *DateInput) setText(text string) {
	d.input.SetValue(text)
	d.input.CursorEnd()
	if text == "" {
		d.date = nil
		return
	}
	if date, ok := chrono.ParseDate(text); ok {
		d.date = &date
	}
}

func (d *DateInput) View() string { return d.input.View() }

// DateTimeInput is a masked YYYY-MM-DD HH:MM:SS entry with the same
// spinbox behavior extended over the clock fields.
type DateTimeInput struct {
	clock chrono.Clock
	input textinput.Model
	value *time.Time
}

// NewDateTimeInput creates an empty date-time entry.
func NewDateTimeInput(clock chrono.Clock) *DateTimeInput {
	if clock == nil {
		clock = chrono.SystemClock
	}
	return &DateTimeInput{clock: clock, input: newMaskedTextInput(dateTimeMask)}
}

// Time returns the committed value.
func (d *DateTimeInput) Time() (time.Time, bool) {
	if d.value == nil {
		return time.Time{}, false
	}
	return *d.value, true
}

// SetTime installs a value and its text form.
func (d *DateTimeInput) SetTime(t time.Time) {
	d.value = &t
	d.input.SetValue(t.Format(chrono.DateTimeFormat))
	d.input.CursorEnd()
}

// Clear drops the value and the text.
func (d *DateTimeInput) Clear() {
	d.value = nil
	d.input.SetValue("")
}

func (d *DateTimeInput) Focus() tea.Cmd { return d.input.Focus() }
func (d *DateTimeInput) Blur()          { d.input.Blur() }
func (d *DateTimeInput) Focused() bool  { return d.input.Focused() }

// Adjust offsets the component under the cursor: positions 0-3 year,
// 5-6 month, 8-9 day, 11-12 hour, 14-15 minute, 17 onward second.
// Clock fields roll over through AddDate semantics; a date component
// leaving the representable years is rejected.
func (d *DateTimeInput) Adjust(delta int) bool {
	base := d.clock.Now()
	if d.value != nil {
		base = *d.value
	}
	var next time.Time
	switch pos := d.input.Position(); {
	case pos <= 4:
		next = base.AddDate(delta, 0, 0)
	case pos <= 7:
		next = base.AddDate(0, delta, 0)
	case pos <= 10:
		next = base.AddDate(0, 0, delta)
	case pos <= 13:
		next = base.Add(time.Duration(delta) * time.Hour)
	case pos <= 16:
		next = base.Add(time.Duration(delta) * time.Minute)
	default:
		next = base.Add(time.Duration(delta) * time.Second)
	}
	if next.Year() < chrono.MinYear || next.Year() > chrono.MaxYear {
		return false
	}
	pos := d.input.Position()
	d.SetTime(next)
	d.input.SetCursor(pos)
	return true
}

func (d *DateTimeInput) Update(msg tea.Msg) (*DateTimeInput, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !d.input.Focused() {
		return d, nil
	}
	switch key.String() {
	case "up":
		d.Adjust(1)
	case "down":
		d.Adjust(-1)
	case "backspace":
		d.setText(trimBack(d.input.Value(), dateTimeMask))
	case "left", "right", "home", "end":
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(key)
		return d, cmd
	default:
		if key.Type == tea.KeyRunes {
			text := d.input.Value()
			for _, r := range key.Runes {
				if next, ok := appendDigit(text, dateTimeMask, dateTimeLimits, r); ok {
					text = next
				}
			}
			d.setText(text)
		}
	}
	return d, nil
}

func (d *DateTimeInput) setText(text string) {
	d.input.SetValue(text)
	d.input.CursorEnd()
	if text == "" {
		d.value = nil
		return
	}
	if t, ok := chrono.ParseDateTime(text); ok {
		d.value = &t
	}
}

func (d *DateTimeInput) View() string { return d.input.View() }

// DurationInput is a masked HH:MM:SS entry for non-negative spans up
// to 99 hours.
type DurationInput struct {
	input textinput.Model
	value *time.Duration
}

// NewDurationInput creates an empty duration entry.
func NewDurationInput() *DurationInput {
	return &DurationInput{input: newMaskedTextInput(durationMask)}
}

// Duration returns the committed value.
func (d *DurationInput) Duration() (time.Duration, bool) {
	if d.value == nil {
		return 0, false
	}
	return *d.value, true
}

// SetDuration installs a value and its text form. Negative spans are
// rejected.
func (d *DurationInput) SetDuration(span time.Duration) bool {
	if span < 0 || span >= 100*time.Hour {
		return false
	}
	d.value = &span
	d.input.SetValue(chrono.FormatDuration(span))
	d.input.CursorEnd()
	return true
}

// Clear drops the value and the text.
func (d *DurationInput) Clear() {
	d.value = nil
	d.input.SetValue("")
}

func (d *DurationInput) Focus() tea.Cmd { return d.input.Focus() }
func (d *DurationInput) Blur()          { d.input.Blur() }
func (d *DurationInput) Focused() bool  { return d.input.Focused() }

// Adjust offsets the component under the cursor: positions 0-1 hours,
// 3-4 minutes, 6 onward seconds. Results outside [0, 100h) are
// rejected.
func (d *DurationInput) Adjust(delta int) bool {
	var base time.Duration
	if d.value != nil {
		base = *d.value
	}
	var next time.Duration
	switch pos := d.input.Position(); {
	case pos <= 2:
		next = base + time.Duration(delta)*time.Hour
	case pos <= 5:
		next = base + time.Duration(delta)*time.Minute
	default:
		next = base + time.Duration(delta)*time.Second
	}
	pos := d.input.Position()
	if !d.SetDuration(next) {
		return false
	}
	d.input.SetCursor(pos)
	return true
}

func (d *DurationInput) Update(msg tea.Msg) (*DurationInput, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !d.input.Focused() {
		return d, nil
	}
	switch key.String() {
	case "up":
		d.Adjust(1)
	case "down":
		d.Adjust(-1)
	case "backspace":
		d.setText(trimBack(d.input.Value(), durationMask))
	case "left", "right", "home", "end":
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(key)
		return d, cmd
	default:
		if key.Type == tea.KeyRunes {
			text := d.input.Value()
			for _, r := range key.Runes {
				if next, ok := appendDigit(text, durationMask, durationLimits, r); ok {
					text = next
				}
			}
			d.setText(text)
		}
	}
	return d, nil
}

func (d *DurationInput) setText(text string) {
	d.input.SetValue(text)
	d.input.CursorEnd()
	if text == "" {
		d.value = nil
		return
	}
	if span, ok := parseDuration(text); ok {
		d.value = &span
	}
}

func (d *DurationInput) View() string { return d.input.View() }

// parseDuration reads a complete HH:MM:SS string.
func parseDuration(text string) (time.Duration, bool) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, false
	}
	var total time.Duration
	units := [3]time.Duration{time.Hour, time.Minute, time.Second}
	for i, part := range parts {
		if len(part) != 2 {
			return 0, false
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, false
		}
		if i > 0 && n > 59 {
			return 0, false
		}
		total += time.Duration(n) * units[i]
	}
	return total, true
}
