package heatmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
)

// YearChangedMsg reports that the manager switched display years.
type YearChangedMsg struct{ Year int }

// Manager wraps a heatmap with year navigation: relative steps, a
// jump to the clock's current year, and a typed 4-digit year entry.
type Manager struct {
	clock   chrono.Clock
	heatmap *Model
	input   textinput.Model
	editing bool
}

// NewManager creates a manager around a fresh heatmap.
func NewManager(clock chrono.Clock) *Manager {
	if clock == nil {
		clock = chrono.SystemClock
	}
	ti := textinput.New()
	ti.Placeholder = "YYYY"
	ti.CharLimit = 4
	ti.Width = 4
	ti.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("year digits only")
			}
		}
		return nil
	}
	return &Manager{
		clock:   clock,
		heatmap: New(clock),
		input:   ti,
	}
}

// Heatmap exposes the wrapped widget.
func (m *Manager) Heatmap() *Model { return m.heatmap }

// Year returns the display year.
func (m *Manager) Year() int { return m.heatmap.Year() }

// SetYear switches the display year and reports whether it changed.
func (m *Manager) SetYear(year int) (tea.Cmd, bool) {
	before := m.heatmap.Year()
	m.heatmap.SetYear(year)
	after := m.heatmap.Year()
	if after == before {
		return nil, false
	}
	return func() tea.Msg { return YearChangedMsg{Year: after} }, true
}

func (m *Manager) Init() tea.Cmd { return nil }

// Update routes keys to either the year entry or the heatmap. While
// the entry is focused it owns every keystroke until enter or escape.
func (m *Manager) Update(msg tea.Msg) (*Manager, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.editing {
			return m.updateEditing(key)
		}
		switch key.String() {
		case "[":
			cmd, _ := m.SetYear(m.Year() - 1)
			return m, cmd
		case "]":
			cmd, _ := m.SetYear(m.Year() + 1)
			return m, cmd
		case "{":
			cmd, _ := m.SetYear(m.Year() - 5)
			return m, cmd
		case "}":
			cmd, _ := m.SetYear(m.Year() + 5)
			return m, cmd
		case "t":
			cmd, _ := m.SetYear(m.clock.Today().Year)
			return m, cmd
		case "y":
			m.editing = true
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}

	// The heatmap sits one line below the navigation header, so mouse
	// coordinates shift up before they reach its layout.
	if mouse, ok := msg.(tea.MouseMsg); ok {
		mouse.Y--
		msg = mouse
	}

	heatmap, cmd := m.heatmap.Update(msg)
	m.heatmap = heatmap
	return m, cmd
}

func (m *Manager) updateEditing(key tea.KeyMsg) (*Manager, tea.Cmd) {
	switch key.String() {
	case "enter":
		m.editing = false
		m.input.Blur()
		year, err := strconv.Atoi(m.input.Value())
		if err != nil {
			return m, nil
		}
		cmd, _ := m.SetYear(year)
		return m, cmd
	case "esc", "escape":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// View renders the navigation header above the heatmap surface.
func (m *Manager) View() string {
	var header string
	if m.editing {
		header = fmt.Sprintf("<<  <  %s  >  >>", m.input.View())
	} else {
		header = fmt.Sprintf("<<  <  %d  >  >>", m.Year())
	}
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.heatmap.View())
	if tip := m.heatmap.Tooltip(); tip != "" {
		b.WriteString("\n")
		b.WriteString(tip)
	}
	return b.String()
}
