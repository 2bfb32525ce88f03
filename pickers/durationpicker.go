package pickers

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
	"tempus/reconcile"
)

// DateTimeDurationPicker edits a start/end date-time pair plus the
// duration between them. Editing the duration pins it and derives the
// end; with the lock engaged moving either endpoint preserves it.
type DateTimeDurationPicker struct {
	clock    chrono.Clock
	start    *DateTimeInput
	end      *DateTimeInput
	duration *DurationInput
	rng      *reconcile.TimeRange
	focus    int // 0 start, 1 end, 2 duration
	expanded bool
	overlay  *DateSelect
	styles   Styles
}

// NewDateTimeDurationPicker creates an empty picker on the given
// clock.
func NewDateTimeDurationPicker(clock chrono.Clock) *DateTimeDurationPicker {
	if clock == nil {
		clock = chrono.SystemClock
	}
	return &DateTimeDurationPicker{
		clock:    clock,
		start:    NewDateTimeInput(clock),
		end:      NewDateTimeInput(clock),
		duration: NewDurationInput(),
		rng:      &reconcile.TimeRange{},
		overlay:  NewDateSelect(clock),
		styles:   DefaultStyles(),
	}
}

// NewDateTimeDurationPickerWithSpan creates a picker with the duration
// pinned up front.
func NewDateTimeDurationPickerWithSpan(clock chrono.Clock, span time.Duration) *DateTimeDurationPicker {
	p := NewDateTimeDurationPicker(clock)
	p.rng = reconcile.NewLockedTimeRange(time.Time{}, time.Time{}, span)
	p.syncInputs()
	return p
}

// Range returns both endpoints.
func (p *DateTimeDurationPicker) Range() (start time.Time, startOk bool, end time.Time, endOk bool) {
	start, startOk = p.rng.Start()
	end, endOk = p.rng.End()
	return start, startOk, end, endOk
}

// Duration returns the span between the endpoints, pinned or derived.
func (p *DateTimeDurationPicker) Duration() (time.Duration, bool) { return p.rng.Span() }

// Locked reports whether the span lock is engaged.
func (p *DateTimeDurationPicker) Locked() bool { return p.rng.Locked() }

// SetStart drives the start endpoint through the reconciler.
func (p *DateTimeDurationPicker) SetStart(t time.Time) tea.Cmd {
	if !p.rng.SetStart(t) {
		p.syncInputs()
		return nil
	}
	return p.announce()
}

// SetEnd drives the end endpoint through the reconciler.
func (p *DateTimeDurationPicker) SetEnd(t time.Time) tea.Cmd {
	if !p.rng.SetEnd(t) {
		p.syncInputs()
		return nil
	}
	return p.announce()
}

// SetDuration pins the span, deriving the missing endpoint when one is
// known.
func (p *DateTimeDurationPicker) SetDuration(span time.Duration) tea.Cmd {
	if !p.rng.SetSpan(span) {
		p.syncInputs()
		return nil
	}
	return p.announce()
}

// ToggleLock flips the span lock. Engaging needs both endpoints.
func (p *DateTimeDurationPicker) ToggleLock() tea.Cmd {
	if p.rng.Locked() {
		p.rng.DisengageLock()
	} else if !p.rng.EngageLock() {
		return nil
	}
	locked := p.rng.Locked()
	return func() tea.Msg { return LockToggledMsg{Locked: locked} }
}

// setNow puts the clock's now on the focused endpoint, clamped to the
// other endpoint so the range cannot invert. With the duration field
// focused it re-pins the derived span instead.
func (p *DateTimeDurationPicker) setNow() tea.Cmd {
	now := p.clock.Now().Truncate(time.Second)
	switch p.focus {
	case 2:
		if span, ok := p.rng.Span(); ok {
			return p.SetDuration(span)
		}
		return nil
	case 1:
		if start, ok := p.rng.Start(); ok && !p.rng.Locked() && now.Before(start) {
			now = start
		}
		return p.SetEnd(now)
	default:
		if end, ok := p.rng.End(); ok && !p.rng.Locked() && now.After(end) {
			now = end
		}
		return p.SetStart(now)
	}
}

// Clear drops the endpoints and the lock.
func (p *DateTimeDurationPicker) Clear() tea.Cmd {
	p.rng.Clear()
	return p.announce()
}

func (p *DateTimeDurationPicker) announce() tea.Cmd {
	p.syncInputs()
	start, startOk, end, endOk := p.Range()
	span, spanOk := p.rng.Span()
	return tea.Batch(
		func() tea.Msg {
			return TimeRangeChangedMsg{Start: start, StartOk: startOk, End: end, EndOk: endOk}
		},
		func() tea.Msg {
			return DurationChangedMsg{Duration: span, Ok: spanOk}
		},
	)
}

func (p *DateTimeDurationPicker) syncInputs() {
	if start, ok := p.rng.Start(); ok {
		p.start.SetTime(start)
	} else {
		p.start.Clear()
	}
	if end, ok := p.rng.End(); ok {
		p.end.SetTime(end)
	} else {
		p.end.Clear()
	}
	if span, ok := p.rng.Span(); ok {
		p.duration.SetDuration(span)
	} else {
		p.duration.Clear()
	}
	if start, ok := p.rng.Start(); ok {
		date := chrono.DateOf(start)
		p.overlay.SetSelected(&date)
	} else {
		p.overlay.SetSelected(nil)
	}
}

func (p *DateTimeDurationPicker) Init() tea.Cmd { return nil }

// Update routes keys to the focused field. Calendar selections swap
// the date part of the start, or of the end with the alt modifier.
func (p *DateTimeDurationPicker) Update(msg tea.Msg) (*DateTimeDurationPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DateSelectedMsg:
		if msg.Alt {
			return p, p.SetEnd(p.mergeDate(p.end, msg.Date))
		}
		return p, p.SetStart(p.mergeDate(p.start, msg.Date))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+o":
			p.expanded = !p.expanded
			return p, nil
		case "ctrl+l":
			return p, p.ToggleLock()
		case "ctrl+t":
			return p, p.setNow()
		case "ctrl+x":
			return p, p.Clear()
		case "tab":
			p.focus = (p.focus + 1) % 3
			return p, nil
		}
		if p.expanded {
			var cmd tea.Cmd
			p.overlay, cmd = p.overlay.Update(msg)
			return p, cmd
		}
		return p, p.updateFocused(msg)

	case tea.MouseMsg:
		if p.expanded {
			var cmd tea.Cmd
			p.overlay, cmd = p.overlay.Update(msg)
			return p, cmd
		}
	}
	return p, nil
}

func (p *DateTimeDurationPicker) mergeDate(input *DateTimeInput, date chrono.Date) time.Time {
	if current, ok := input.Time(); ok {
		return time.Date(date.Year, date.Month, date.Day,
			current.Hour(), current.Minute(), current.Second(), 0, current.Location())
	}
	return date.Time()
}

func (p *DateTimeDurationPicker) updateFocused(msg tea.KeyMsg) tea.Cmd {
	switch p.focus {
	case 2:
		if !p.duration.Focused() {
			p.duration.Focus()
		}
		before, beforeOk := p.duration.Duration()
		next, cmd := p.duration.Update(msg)
		p.duration = next
		after, afterOk := next.Duration()
		if afterOk && (after != before || !beforeOk) {
			return tea.Batch(cmd, p.SetDuration(after))
		}
		return cmd
	case 1:
		return p.updateEndpoint(p.end, msg, p.SetEnd)
	default:
		return p.updateEndpoint(p.start, msg, p.SetStart)
	}
}

func (p *DateTimeDurationPicker) updateEndpoint(input *DateTimeInput, msg tea.KeyMsg, set func(time.Time) tea.Cmd) tea.Cmd {
	if !input.Focused() {
		input.Focus()
	}
	before, beforeOk := input.Time()
	next, cmd := input.Update(msg)
	if input == p.end {
		p.end = next
	} else {
		p.start = next
	}
	after, afterOk := next.Time()
	if afterOk && (!after.Equal(before) || !beforeOk) {
		return tea.Batch(cmd, set(after))
	}
	return cmd
}

func (p *DateTimeDurationPicker) View() string {
	lock := p.styles.Unlocked.Render("[unlocked]")
	if p.rng.Locked() {
		lock = p.styles.Locked.Render("[locked]")
	}
	var b strings.Builder
	b.WriteString(p.styles.Label.Render("start "))
	b.WriteString(p.start.View())
	b.WriteString(p.styles.Label.Render("  end "))
	b.WriteString(p.end.View())
	b.WriteString(p.styles.Label.Render("  for "))
	b.WriteString(p.duration.View())
	b.WriteString("  ")
	b.WriteString(lock)
	if p.expanded {
		b.WriteString("\n")
		b.WriteString(p.overlay.View())
	}
	return b.String()
}
