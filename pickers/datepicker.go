package pickers

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
)

// DatePicker pairs a masked date entry with the calendar overlay.
// Typing, spinbox adjustment and calendar selection all land in the
// same value and announce it as a DateChangedMsg.
type DatePicker struct {
	clock    chrono.Clock
	input    *DateInput
	overlay  *DateSelect
	expanded bool
	styles   Styles
}

// NewDatePicker creates an empty picker on the given clock.
func NewDatePicker(clock chrono.Clock) *DatePicker {
	if clock == nil {
		clock = chrono.SystemClock
	}
	return &DatePicker{
		clock:   clock,
		input:   NewDateInput(clock),
		overlay: NewDateSelect(clock),
		styles:  DefaultStyles(),
	}
}

// Date returns the picker's committed value.
func (p *DatePicker) Date() (chrono.Date, bool) { return p.input.Date() }

// SetDate installs a value and re-anchors the overlay on it.
func (p *DatePicker) SetDate(date chrono.Date) tea.Cmd {
	p.input.SetDate(date)
	p.overlay.SetSelected(&date)
	p.overlay.ShowDate(date)
	return changedCmd(p.input.Date())
}

// Clear drops the value.
func (p *DatePicker) Clear() tea.Cmd {
	p.input.Clear()
	p.overlay.SetSelected(nil)
	return changedCmd(p.input.Date())
}

// Expanded reports whether the calendar overlay is open.
func (p *DatePicker) Expanded() bool { return p.expanded }

func (p *DatePicker) Focus() tea.Cmd { return p.input.Focus() }
func (p *DatePicker) Blur()          { p.input.Blur() }

func (p *DatePicker) Init() tea.Cmd { return nil }

// Update routes keystrokes between the entry and the overlay and
// folds overlay selections back into the entry.
func (p *DatePicker) Update(msg tea.Msg) (*DatePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case DateSelectedMsg:
		return p, p.SetDate(msg.Date)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+o":
			p.expanded = !p.expanded
			return p, nil
		case "ctrl+t":
			return p, p.SetDate(p.clock.Today())
		case "ctrl+x":
			return p, p.Clear()
		}
		if p.expanded {
			var cmd tea.Cmd
			p.overlay, cmd = p.overlay.Update(msg)
			return p, cmd
		}
		before, beforeOk := p.input.Date()
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		after, afterOk := p.input.Date()
		if before != after || beforeOk != afterOk {
			if afterOk {
				p.overlay.SetSelected(&after)
				p.overlay.ShowDate(after)
			} else {
				p.overlay.SetSelected(nil)
			}
			return p, tea.Batch(cmd, changedCmd(after, afterOk))
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

func changedCmd(date chrono.Date, ok bool) tea.Cmd {
	return func() tea.Msg { return DateChangedMsg{Date: date, Ok: ok} }
}

func (p *DatePicker) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Label.Render("date "))
	b.WriteString(p.input.View())
	if p.expanded {
		b.WriteString("\n")
		b.WriteString(p.overlay.View())
	}
	return b.String()
}
