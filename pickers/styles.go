// Package pickers composes the date and time selection widgets: the
// calendar overlay, masked text inputs with spinbox adjustment, and
// the single, range and duration pickers built from them.
package pickers

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styling shared by the picker widgets.
type Styles struct {
	Header    lipgloss.Style
	Weekday   lipgloss.Style
	Cell      lipgloss.Style
	Sentinel  lipgloss.Style
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	InRange   lipgloss.Style
	Label     lipgloss.Style
	Locked    lipgloss.Style
	Unlocked  lipgloss.Style
	ErrorText lipgloss.Style
}

// DefaultStyles returns the stock picker look.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		Weekday: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Sentinel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("213")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("39")),
		InRange: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("24")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Locked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Unlocked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}
