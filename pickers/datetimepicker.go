package pickers

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
)

// DateTimePicker pairs a masked date-time entry with the calendar
// overlay. Calendar selection replaces the date part and keeps the
// time of day from the current value.
type DateTimePicker struct {
	clock    chrono.Clock
	input    *DateTimeInput
	overlay  *DateSelect
	expanded bool
	styles   Styles
}

// NewDateTimePicker creates an empty picker on the given clock.
func NewDateTimePicker(clock chrono.Clock) *DateTimePicker {
	if clock == nil {
		clock = chrono.SystemClock
	}
	return &DateTimePicker{
		clock:   clock,
		input:   NewDateTimeInput(clock),
		overlay: NewDateSelect(clock),
		styles:  DefaultStyles(),
	}
}

// Time returns the picker's committed value.
func (p *DateTimePicker) Time() (time.Time, bool) { return p.input.Time() }

// SetTime installs a value and re-anchors the overlay on its date.
func (p *DateTimePicker) SetTime(t time.Time) tea.Cmd {
	p.input.SetTime(t)
	date := chrono.DateOf(t)
	p.overlay.SetSelected(&date)
	p.overlay.ShowDate(date)
	return timeChangedCmd(p.input.Time())
}

// Clear drops the value.
func (p *DateTimePicker) Clear() tea.Cmd {
	p.input.Clear()
	p.overlay.SetSelected(nil)
	return timeChangedCmd(p.input.Time())
}

// Expanded reports whether the calendar overlay is open.
func (p *DateTimePicker) Expanded() bool { return p.expanded }

func (p *DateTimePicker) Focus() tea.Cmd { return p.input.Focus() }
func (p *DateTimePicker) Blur()          { p.input.Blur() }

func (p *DateTimePicker) Init() tea.Cmd { return nil }

func (p *DateTimePicker) Update(msg tea.Msg) (*DateTimePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DateSelectedMsg:
		return p, p.SetTime(p.mergeDate(msg.Date))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+o":
			p.expanded = !p.expanded
			return p, nil
		case "ctrl+t":
			return p, p.SetTime(p.clock.Now().Truncate(time.Second))
		case "ctrl+x":
			return p, p.Clear()
		}
		if p.expanded {
			var cmd tea.Cmd
			p.overlay, cmd = p.overlay.Update(msg)
			return p, cmd
		}
		before, beforeOk := p.input.Time()
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		after, afterOk := p.input.Time()
		if !before.Equal(after) || beforeOk != afterOk {
			if afterOk {
				date := chrono.DateOf(after)
				p.overlay.SetSelected(&date)
				p.overlay.ShowDate(date)
			}
			return p, tea.Batch(cmd, timeChangedCmd(after, afterOk))
		}
		return p, cmd

	case tea.MouseMsg:
		if p.expanded {
			var cmd tea.Cmd
			p.overlay, cmd = p.overlay.Update(msg)
			return p, cmd
		}
	}
	return p, nil
}

// mergeDate swaps the date part of the current value, keeping its time
// of day. With no value yet the selected date starts at midnight.
func (p *DateTimePicker) mergeDate(date chrono.Date) time.Time {
	if current, ok := p.input.Time(); ok {
		return time.Date(date.Year, date.Month, date.Day,
			current.Hour(), current.Minute(), current.Second(), 0, current.Location())
	}
	return date.Time()
}

func timeChangedCmd(t time.Time, ok bool) tea.Cmd {
	return func() tea.Msg { return DateTimeChangedMsg{Time: t, Ok: ok} }
}

func (p *DateTimePicker) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Label.Render("when "))
	b.WriteString(p.input.View())
	if p.expanded {
		b.WriteString("\n")
		b.WriteString(p.overlay.View())
	}
	return b.String()
}
