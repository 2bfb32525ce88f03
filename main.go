package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tempus/chrono"
	"tempus/heatmap"
	"tempus/pickers"
	"tempus/timeline"
)

// Demo binary showing every widget in the module. Tab cycles between
// them; each widget documents its own keys (ctrl+o opens calendar
// overlays, ctrl+l toggles range locks, up/down spin input segments).

var tabNames = []string{"date", "date-time", "range", "duration", "heatmap", "timeline"}

type app struct {
	tab int

	date     *pickers.DatePicker
	dateTime *pickers.DateTimePicker
	rng      *pickers.DateRangePicker
	duration *pickers.DateTimeDurationPicker
	heat     *heatmap.Manager
	line     *timeline.Model

	status string
}

func newApp(clock chrono.Clock) *app {
	a := &app{
		date:     pickers.NewDatePicker(clock),
		dateTime: pickers.NewDateTimePicker(clock),
		rng:      pickers.NewDateRangePickerWithSpan(clock, chrono.Weeks(1)),
		duration: pickers.NewDateTimeDurationPicker(clock),
		heat:     heatmap.NewManager(clock),
		line:     timeline.New(24*3600, 900),
	}
	a.date.Focus()
	return a
}

func (a *app) Init() tea.Cmd {
	// Seed the heatmap with a deterministic sample set so the scale is
	// visible right away.
	hm := a.heat.Heatmap()
	dates := hm.Dates()
	raw := make(heatmap.ActivityData, len(dates))
	for r, week := range dates {
		raw[r] = make([]*float64, len(week))
		for c, d := range week {
			if d == nil || d.Day%3 == 0 {
				continue
			}
			v := float64(d.Day * 600)
			raw[r][c] = &v
		}
	}
	return hm.ProcessData(raw)
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case heatmap.DataProcessed:
		var cmd tea.Cmd
		_, cmd = a.heat.Update(msg)
		return a, cmd

	case pickers.DateChangedMsg:
		if msg.Ok {
			a.status = "date: " + msg.Date.String()
		} else {
			a.status = "date cleared"
		}
		return a, nil

	case pickers.RangeChangedMsg:
		a.status = fmt.Sprintf("range: %v .. %v", msg.Start, msg.End)
		return a, nil

	case pickers.DurationChangedMsg:
		if msg.Ok {
			a.status = "duration: " + chrono.FormatDuration(msg.Duration)
		}
		return a, nil

	case heatmap.DateSelectedMsg:
		a.status = "heatmap day: " + msg.Date.String()
		return a, nil

	case timeline.EntryCreatedMsg:
		a.status = fmt.Sprintf("entry: %s .. %s",
			chrono.FormatSeconds(msg.Entry.Start, false),
			chrono.FormatSeconds(msg.Entry.End, false))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "shift+tab":
			a.tab = (a.tab + 1) % len(tabNames)
			return a, nil
		}
	}
	return a, a.routeActive(msg)
}

// routeActive hands a message to the widget on the active tab.
func (a *app) routeActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.tab {
	case 0:
		a.date, cmd = a.date.Update(msg)
	case 1:
		a.dateTime, cmd = a.dateTime.Update(msg)
	case 2:
		a.rng, cmd = a.rng.Update(msg)
	case 3:
		a.duration, cmd = a.duration.Update(msg)
	case 4:
		a.heat, cmd = a.heat.Update(msg)
	case 5:
		a.line, cmd = a.line.Update(msg)
	}
	return cmd
}

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	activeTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

func (a *app) View() string {
	var b strings.Builder
	for i, name := range tabNames {
		style := tabStyle
		if i == a.tab {
			style = activeTabStyle
		}
		b.WriteString(style.Render(name))
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	switch a.tab {
	case 0:
		b.WriteString(a.date.View())
	case 1:
		b.WriteString(a.dateTime.View())
	case 2:
		b.WriteString(a.rng.View())
	case 3:
		b.WriteString(a.duration.View())
	case 4:
		b.WriteString(a.heat.View())
	case 5:
		b.WriteString(a.line.View())
	}

	if a.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(a.status))
	}
	return b.String()
}

func main() {
	var showVersion = flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("tempus 0.1.0")
		return
	}

	p := tea.NewProgram(newApp(chrono.SystemClock), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
