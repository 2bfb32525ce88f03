package heatmap

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"tempus/chrono"
)

// Styles holds the lipgloss styling for the heatmap surface. The tile
// scale is computed per value by blending ActivityColor toward
// BackgroundColor, so only the anchors are configured.
type Styles struct {
	Label    lipgloss.Style
	LabelAlt lipgloss.Style
	Hover    lipgloss.Style

	ActivityColor   string
	BackgroundColor string
}

// DefaultStyles returns the stock heatmap look.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		LabelAlt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Hover: lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Bold(true),
		ActivityColor:   "#5fd700",
		BackgroundColor: "#1c1c1c",
	}
}

// DateSelectedMsg reports a day tile selection.
type DateSelectedMsg struct{ Date chrono.Date }

// WeekSelectedMsg reports a week selection by its first day.
type WeekSelectedMsg struct{ Week chrono.Date }

// MonthSelectedMsg reports a month selection by its first day.
type MonthSelectedMsg struct{ Month chrono.Date }

// Model is the activity heatmap widget: one display year of tiles with
// a modal cursor over them. Raw samples go in through ProcessData and
// come back normalized via a DataProcessed message.
type Model struct {
	clock  chrono.Clock
	year   int
	dates  [][]*chrono.Date
	data   ActivityData
	totals Totals
	cursor *Cursor
	norm   Normalizer
	styles Styles
}

// New creates a heatmap for the clock's current year.
func New(clock chrono.Clock) *Model {
	if clock == nil {
		clock = chrono.SystemClock
	}
	year := clock.Today().Year
	return &Model{
		clock:  clock,
		year:   year,
		dates:  EmptyYear(year),
		styles: DefaultStyles(),
	}
}

// Year returns the display year.
func (m *Model) Year() int { return m.year }

// SetYear switches the display year, clamped to the representable
// window, and drops data belonging to the old year.
func (m *Model) SetYear(year int) {
	if year < chrono.MinYear {
		year = chrono.MinYear
	}
	if year > chrono.MaxYear {
		year = chrono.MaxYear
	}
	if year == m.year {
		return
	}
	m.year = year
	m.dates = EmptyYear(year)
	m.data = nil
	m.totals = nil
	m.cursor = nil
}

// Cursor returns the active cursor, or nil when none is placed.
func (m *Model) Cursor() *Cursor { return m.cursor }

// SetCursor places or clears the cursor directly.
func (m *Model) SetCursor(c *Cursor) { m.cursor = c }

// Dates exposes the week/day scaffold for the display year so callers
// can shape their raw samples before ProcessData.
func (m *Model) Dates() [][]*chrono.Date { return m.dates }

// ProcessData schedules a background normalization pass over raw
// samples shaped like Dates(). The result arrives as a DataProcessed
// message; hand it back through Update.
func (m *Model) ProcessData(raw ActivityData) tea.Cmd {
	return m.norm.Process(m.dates, raw)
}

// SumWeek totals the raw samples for the week starting at the date.
func (m *Model) SumWeek(start chrono.Date) float64 { return m.totals.SumWeek(start) }

// SumMonth totals the raw samples for the date's month.
func (m *Model) SumMonth(first chrono.Date) float64 { return m.totals.SumMonth(first) }

func (m *Model) Init() tea.Cmd { return nil }

// Update handles navigation keys, mouse hits and normalization
// results. It never fails: commands at the edges and clicks outside
// the layout are no-ops.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DataProcessed:
		if !m.norm.Current(msg.Seq) {
			return m, nil
		}
		m.data = msg.Data
		m.totals = msg.Totals
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch msg.String() {
	case "right":
		m.moveCursor(0, 1)
	case "left":
		m.moveCursor(0, -1)
	case "down":
		m.moveCursor(1, 0)
	case "up":
		m.moveCursor(-1, 0)
	case "enter":
		return m, m.selectCursor()
	case "esc", "escape":
		m.cursor = nil
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (*Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if c, ok := CursorAt(msg.X, msg.Y); ok {
			m.cursor = &c
		} else {
			m.cursor = nil
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if c, ok := CursorAt(msg.X, msg.Y); ok {
			m.cursor = &c
			return m, m.selectCursor()
		}
	}
	return m, nil
}

// moveCursor applies a directional step; a command arriving with no
// cursor places the default instead of failing.
func (m *Model) moveCursor(dayDelta, weekDelta int) {
	if m.cursor == nil {
		m.cursor = &Cursor{Week: 1, Day: 1}
		return
	}
	if !m.cursor.CanMove(dayDelta, weekDelta) {
		return
	}
	next := m.cursor.Move(m.year, dayDelta, weekDelta)
	m.cursor = &next
}

func (m *Model) selectCursor() tea.Cmd {
	if m.cursor == nil {
		return nil
	}
	cursor := *m.cursor
	m.cursor = nil

	date, ok := cursor.ToDate(m.year)
	if !ok {
		return nil
	}
	switch {
	case cursor.IsMonth():
		return func() tea.Msg { return MonthSelectedMsg{Month: date} }
	case cursor.IsWeek():
		return func() tea.Msg { return WeekSelectedMsg{Week: date} }
	default:
		if date.Year != m.year {
			return nil
		}
		return func() tea.Msg { return DateSelectedMsg{Date: date} }
	}
}

// Tooltip describes what the cursor addresses together with its raw
// total, e.g. "14 March\n02:30". Empty when no cursor is placed.
func (m *Model) Tooltip() string {
	if m.cursor == nil {
		return ""
	}
	date, ok := m.cursor.ToDate(m.year)
	if !ok {
		return ""
	}
	var head string
	var total float64
	switch {
	case m.cursor.IsMonth():
		head = fmt.Sprintf("%s %d", date.Month, date.Year)
		total = m.SumMonth(date)
	case m.cursor.IsWeek():
		_, week := date.ISOWeek()
		head = fmt.Sprintf("week %d of %d", week, date.Year)
		total = m.SumWeek(date)
	default:
		if date.Year != m.year {
			return ""
		}
		head = fmt.Sprintf("%d %s", date.Day, date.Month)
		total = m.totals[date]
	}
	tip := head + "\n" + chrono.FormatSeconds(int(total), false)
	return wordwrap.String(tip, ContentWidth)
}

var weekdayAbbr = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// View renders the full heatmap surface. The geometry here mirrors the
// constants in layout.go.
func (m *Model) View() string {
	lines := make([]string, ContentHeight)
	for day := 1; day <= 7; day++ {
		lines[tileFirstY+(day-1)*2] = m.renderWeekdayRow(day)
	}
	lines[weekRowY] = m.renderWeekRow()
	lines[monthRowY] = m.renderMonthRow()
	return strings.Join(lines, "\n")
}

func (m *Model) renderWeekdayRow(day int) string {
	var b strings.Builder
	label := weekdayAbbr[day-1]
	if day%2 == 0 {
		b.WriteString(m.styles.LabelAlt.Render(label))
	} else {
		b.WriteString(m.styles.Label.Render(label))
	}
	b.WriteString(" ")
	for week := 1; week <= len(m.dates); week++ {
		b.WriteString(m.renderTile(week, day))
		b.WriteString(" ")
	}
	return b.String()
}

func (m *Model) renderTile(week, day int) string {
	if m.isHighlighted(week, day) {
		return m.styles.Hover.Render("██")
	}
	value := m.valueAt(week, day)
	if value == nil {
		return "  "
	}
	tile := lipgloss.NewStyle().Foreground(lipgloss.Color(m.blend(*value)))
	return tile.Render("██")
}

func (m *Model) valueAt(week, day int) *float64 {
	if week-1 >= len(m.data) {
		return nil
	}
	row := m.data[week-1]
	if day-1 >= len(row) {
		return nil
	}
	return row[day-1]
}

// blend mixes the activity color toward the background by the
// normalized distance value: busy days (low value) stay saturated.
func (m *Model) blend(value float64) string {
	base, err := colorful.Hex(m.styles.ActivityColor)
	if err != nil {
		return m.styles.ActivityColor
	}
	bg, err := colorful.Hex(m.styles.BackgroundColor)
	if err != nil {
		return m.styles.ActivityColor
	}
	return base.BlendLuv(bg, value).Clamped().Hex()
}

func (m *Model) renderWeekRow() string {
	var b strings.Builder
	b.WriteString("    ")
	for week := 1; week <= 53; week++ {
		text := fmt.Sprintf("%2d", week)
		style := m.styles.Label
		if week%2 == 0 {
			style = m.styles.LabelAlt
		}
		if m.cursor != nil && m.cursor.IsWeek() && m.cursor.Week == week {
			style = m.styles.Hover
		}
		b.WriteString(style.Render(text))
		b.WriteString(" ")
	}
	return b.String()
}

func (m *Model) renderMonthRow() string {
	var b strings.Builder
	b.WriteString("   ")
	for month := 1; month <= 12; month++ {
		style := m.styles.Label
		if month%2 == 0 {
			style = m.styles.LabelAlt
		}
		if m.cursor != nil && m.cursor.IsMonth() && m.cursor.Month == month {
			style = m.styles.Hover
		}
		b.WriteString(style.Render(time.Month(month).String()[:3]))
		b.WriteString(strings.Repeat(" ", monthPitchX-3))
	}
	return b.String()
}

// isHighlighted reports whether a tile should render hovered given the
// cursor mode: exact tile in day mode, the whole column in week mode,
// or every in-month tile in month mode.
func (m *Model) isHighlighted(week, day int) bool {
	if m.cursor == nil {
		return false
	}
	switch {
	case m.cursor.IsWeek():
		return m.cursor.Week == week
	case m.cursor.IsMonth():
		if week-1 >= len(m.dates) || day-1 >= len(m.dates[week-1]) {
			return false
		}
		d := m.dates[week-1][day-1]
		return d != nil && int(d.Month) == m.cursor.Month
	default:
		return m.cursor.Week == week && m.cursor.Day == day
	}
}
