package pickers

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
	"tempus/reconcile"
)

// DateRangePicker edits a start/end date pair through two masked
// entries and a shared calendar overlay. Engaging the lock captures
// the current span, after which moving either endpoint drags the other
// along with it.
type DateRangePicker struct {
	clock    chrono.Clock
	start    *DateInput
	end      *DateInput
	overlay  *DateSelect
	rng      *reconcile.DateRange
	focusEnd bool
	expanded bool
	styles   Styles
}

// NewDateRangePicker creates an empty range picker on the given clock.
func NewDateRangePicker(clock chrono.Clock) *DateRangePicker {
	if clock == nil {
		clock = chrono.SystemClock
	}
	return &DateRangePicker{
		clock:   clock,
		start:   NewDateInput(clock),
		end:     NewDateInput(clock),
		overlay: NewDateSelect(clock),
		rng:     &reconcile.DateRange{},
		styles:  DefaultStyles(),
	}
}

// NewDateRangePickerWithSpan creates a range picker with the span
// pinned up front: picking either endpoint derives the other at the
// given distance.
func NewDateRangePickerWithSpan(clock chrono.Clock, span chrono.DateDelta) *DateRangePicker {
	p := NewDateRangePicker(clock)
	p.rng = reconcile.NewLockedDateRange(chrono.Date{}, chrono.Date{}, span)
	return p
}

// Range returns both endpoints.
func (p *DateRangePicker) Range() (start chrono.Date, startOk bool, end chrono.Date, endOk bool) {
	start, startOk = p.rng.Start()
	end, endOk = p.rng.End()
	return start, startOk, end, endOk
}

// Locked reports whether the span lock is engaged.
func (p *DateRangePicker) Locked() bool { return p.rng.Locked() }

// SetStart drives the start endpoint through the reconciler.
func (p *DateRangePicker) SetStart(date chrono.Date) tea.Cmd {
	if !p.rng.SetStart(date) {
		p.syncInputs()
		return nil
	}
	return p.announce()
}

// SetEnd drives the end endpoint through the reconciler.
func (p *DateRangePicker) SetEnd(date chrono.Date) tea.Cmd {
	if !p.rng.SetEnd(date) {
		p.syncInputs()
		return nil
	}
	return p.announce()
}

// ToggleLock flips the span lock. Engaging needs both endpoints.
func (p *DateRangePicker) ToggleLock() tea.Cmd {
	if p.rng.Locked() {
		p.rng.DisengageLock()
	} else if !p.rng.EngageLock() {
		return nil
	}
	locked := p.rng.Locked()
	return func() tea.Msg { return LockToggledMsg{Locked: locked} }
}

// setToday puts the clock's today on the focused endpoint, clamped to
// the other endpoint so the range cannot invert. Under an engaged lock
// the other endpoint shifts instead, so no clamp applies.
func (p *DateRangePicker) setToday() tea.Cmd {
	today := p.clock.Today()
	if p.focusEnd {
		if start, ok := p.rng.Start(); ok && !p.rng.Locked() && today.Before(start) {
			today = start
		}
		return p.SetEnd(today)
	}
	if end, ok := p.rng.End(); ok && !p.rng.Locked() && today.After(end) {
		today = end
	}
	return p.SetStart(today)
}

// Clear drops both endpoints and the lock.
func (p *DateRangePicker) Clear() tea.Cmd {
	p.rng.Clear()
	return p.announce()
}

// announce syncs the text entries and overlay from the reconciled
// state and reports the new endpoints.
func (p *DateRangePicker) announce() tea.Cmd {
	p.syncInputs()
	start, startOk, end, endOk := p.Range()
	return func() tea.Msg {
		return RangeChangedMsg{Start: start, StartOk: startOk, End: end, EndOk: endOk}
	}
}

func (p *DateRangePicker) syncInputs() {
	if start, ok := p.rng.Start(); ok {
		p.start.SetDate(start)
	} else {
		p.start.Clear()
	}
	if end, ok := p.rng.End(); ok {
		p.end.SetDate(end)
	} else {
		p.end.Clear()
	}
	p.syncOverlay()
}

func (p *DateRangePicker) syncOverlay() {
	start, startOk := p.rng.Start()
	end, endOk := p.rng.End()
	switch {
	case startOk && endOk:
		p.overlay.SetRange(&start, &end)
		p.overlay.SetSelected(nil)
	case startOk:
		p.overlay.SetRange(nil, nil)
		p.overlay.SetSelected(&start)
	case endOk:
		p.overlay.SetRange(nil, nil)
		p.overlay.SetSelected(&end)
	default:
		p.overlay.SetRange(nil, nil)
		p.overlay.SetSelected(nil)
	}
}

func (p *DateRangePicker) Init() tea.Cmd { return nil }

// Update routes keys to the focused entry or the overlay. Calendar
// selections land on the start endpoint, or the end endpoint with the
// alt modifier.
func (p *DateRangePicker) Update(msg tea.Msg) (*DateRangePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DateSelectedMsg:
		if msg.Alt {
			return p, p.SetEnd(msg.Date)
		}
		return p, p.SetStart(msg.Date)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+o":
			p.expanded = !p.expanded
			return p, nil
		case "ctrl+l":
			return p, p.ToggleLock()
		case "ctrl+t":
			return p, p.setToday()
		case "ctrl+x":
			return p, p.Clear()
		case "tab":
			p.focusEnd = !p.focusEnd
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

// updateFocused lets the focused entry consume the key, then pushes
// any parsed value change through the reconciler.
func (p *DateRangePicker) updateFocused(msg tea.KeyMsg) tea.Cmd {
	input := p.start
	if p.focusEnd {
		input = p.end
	}
	if !input.Focused() {
		input.Focus()
	}
	before, beforeOk := input.Date()
	next, cmd := input.Update(msg)
	if p.focusEnd {
		p.end = next
	} else {
		p.start = next
	}
	after, afterOk := next.Date()
	if after == before && afterOk == beforeOk {
		return cmd
	}
	if !afterOk {
		return cmd
	}
	if p.focusEnd {
		return tea.Batch(cmd, p.SetEnd(after))
	}
	return tea.Batch(cmd, p.SetStart(after))
}

func (p *DateRangePicker) View() string {
	lock := p.styles.Unlocked.Render("[unlocked]")
	if p.rng.Locked() {
		lock = p.styles.Locked.Render("[locked]")
	}
	var b strings.Builder
	b.WriteString(p.styles.Label.Render("from "))
	b.WriteString(p.start.View())
	b.WriteString(p.styles.Label.Render("  to "))
	b.WriteString(p.end.View())
	b.WriteString("  ")
	b.WriteString(lock)
	if p.expanded {
		b.WriteString("\n")
		b.WriteString(p.overlay.View())
	}
	return b.String()
}
