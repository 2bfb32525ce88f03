package pickers

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
	"tempus/grid"
)

// DateSelect is the calendar overlay: a scoped grid with a cursor,
// zoomable from a single month out to a century. Selecting a day emits
// DateSelectedMsg; selecting a coarser cell zooms back in around it.
type DateSelect struct {
	clock  chrono.Clock
	grid   grid.Grid
	cursor grid.Cursor

	// selected and the range pair drive highlighting only; the value
	// itself is owned by the enclosing picker.
	selected   *chrono.Date
	rangeStart *chrono.Date
	rangeEnd   *chrono.Date

	// invertAlt swaps the default and alt selection targets, so a
	// plain select lands on the end of a range.
	invertAlt bool

	styles Styles
}

// NewDateSelect creates a calendar anchored on the clock's today at
// month scope.
func NewDateSelect(clock chrono.Clock) *DateSelect {
	if clock == nil {
		clock = chrono.SystemClock
	}
	d := &DateSelect{
		clock:  clock,
		cursor: grid.Cursor{Row: 0, Col: grid.HeaderTitle},
		styles: DefaultStyles(),
	}
	d.rebuild(grid.ScopeMonth, clock.Today())
	return d
}

// NewEndDateSelect creates a calendar whose plain selections carry the
// alt flag, targeting the end of a range by default.
func NewEndDateSelect(clock chrono.Clock) *DateSelect {
	d := NewDateSelect(clock)
	d.invertAlt = true
	return d
}

// Scope returns the current zoom level.
func (d *DateSelect) Scope() grid.Scope { return d.grid.Scope }

// Anchor returns the date the grid is built around.
func (d *DateSelect) Anchor() chrono.Date { return d.grid.Anchor }

// Cursor returns the grid cursor position.
func (d *DateSelect) Cursor() grid.Cursor { return d.cursor }

// SetSelected marks a date as the committed value for highlighting.
func (d *DateSelect) SetSelected(date *chrono.Date) { d.selected = date }

// SetRange marks the endpoints highlighted as an inclusive range.
func (d *DateSelect) SetRange(start, end *chrono.Date) {
	d.rangeStart = start
	d.rangeEnd = end
}

// ShowDate re-anchors the calendar at month scope around a date.
func (d *DateSelect) ShowDate(date chrono.Date) {
	d.rebuild(grid.ScopeMonth, date)
}

func (d *DateSelect) rebuild(scope grid.Scope, anchor chrono.Date) {
	d.grid = grid.Build(scope, anchor)
	d.cursor = d.cursor.Confine(d.grid)
}

func (d *DateSelect) Init() tea.Cmd { return nil }

// Update handles cursor movement, selection and mouse hits.
func (d *DateSelect) Update(msg tea.Msg) (*DateSelect, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d.handleKey(msg)
	case tea.MouseMsg:
		return d.handleMouse(msg)
	}
	return d, nil
}

func (d *DateSelect) handleKey(msg tea.KeyMsg) (*DateSelect, tea.Cmd) {
	switch msg.String() {
	case "up":
		d.move(grid.Up)
	case "down":
		d.move(grid.Down)
	case "left":
		d.move(grid.Left)
	case "right":
		d.move(grid.Right)
	case "pgup":
		d.step(-1)
	case "pgdown":
		d.step(1)
	case "enter":
		return d, d.activate(false)
	case "alt+enter", "shift+enter":
		return d, d.activate(true)
	}
	return d, nil
}

func (d *DateSelect) handleMouse(msg tea.MouseMsg) (*DateSelect, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if c, ok := grid.OffsetToCell(d.grid, msg.X, msg.Y); ok {
			d.cursor = c
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return d, nil
		}
		if c, ok := grid.OffsetToCell(d.grid, msg.X, msg.Y); ok {
			d.cursor = c
			return d, d.activate(msg.Alt)
		}
	}
	return d, nil
}

func (d *DateSelect) move(dir grid.Direction) {
	if d.cursor.CanMove(d.grid, dir) {
		d.cursor = d.cursor.Move(d.grid, dir)
	}
}

// step shifts the anchor by the scope's step without moving the
// cursor off the header.
func (d *DateSelect) step(sign int) {
	delta := d.grid.Step()
	if sign < 0 {
		delta = delta.Negate()
	}
	if next, ok := d.grid.Anchor.Add(delta); ok {
		d.rebuild(d.grid.Scope, next)
	}
}

// activate applies the cursor's resolved target. Sentinel cells are
// a no-op.
func (d *DateSelect) activate(alt bool) tea.Cmd {
	target := d.cursor.Resolve(d.grid)
	switch target.Kind {
	case grid.TargetPrev:
		d.step(-1)
	case grid.TargetNext:
		d.step(1)
	case grid.TargetTitle:
		if alt {
			d.rebuild(d.grid.Scope.ZoomIn(), d.grid.Anchor)
		} else {
			d.rebuild(d.grid.Scope.ZoomOut(), d.grid.Anchor)
		}
	case grid.TargetToday:
		today := d.clock.Today()
		d.rebuild(grid.ScopeMonth, today)
		return d.selectedCmd(today, alt)
	case grid.TargetCell:
		return d.activateCell(target.Cell, alt)
	}
	return nil
}

// activateCell selects a day in month scope and zooms back in one
// level around the cell in any coarser scope.
func (d *DateSelect) activateCell(cell grid.Cell, alt bool) tea.Cmd {
	anchor := d.grid.Anchor
	switch d.grid.Scope {
	case grid.ScopeMonth:
		date, ok := chrono.NewDate(anchor.Year, anchor.Month, cell.Value)
		if !ok {
			return nil
		}
		return d.selectedCmd(date, alt)
	case grid.ScopeYear:
		if next, ok := chrono.NewDate(anchor.Year, time.Month(cell.Value), 1); ok {
			d.rebuild(grid.ScopeMonth, next)
		}
	case grid.ScopeDecade:
		if next, ok := chrono.NewDate(cell.Value, anchor.Month, 1); ok {
			d.rebuild(grid.ScopeYear, next)
		}
	case grid.ScopeCentury:
		if next, ok := chrono.NewDate(cell.Value, anchor.Month, 1); ok {
			d.rebuild(grid.ScopeDecade, next)
		}
	}
	return nil
}

func (d *DateSelect) selectedCmd(date chrono.Date, alt bool) tea.Cmd {
	if d.invertAlt {
		alt = !alt
	}
	return func() tea.Msg { return DateSelectedMsg{Date: date, Alt: alt} }
}

var weekdayHeadings = "Mo   Tu   We   Th   Fr   Sa   Su"

// View renders the header, the weekday headings in month scope, and
// the grid rows. Cell geometry matches grid.OffsetToCell.
func (d *DateSelect) View() string {
	var b strings.Builder
	b.WriteString(d.renderHeader())
	b.WriteString("\n")
	if d.grid.Scope == grid.ScopeMonth {
		b.WriteString("\n " + d.styles.Weekday.Render(weekdayHeadings))
		b.WriteString("\n\n")
		for r, row := range d.grid.Rows {
			b.WriteString(d.renderMonthRow(row, r+1))
			b.WriteString("\n\n")
		}
	} else {
		b.WriteString("\n")
		for r, row := range d.grid.Rows {
			b.WriteString(d.renderCoarseRow(row, r+1))
			b.WriteString("\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *DateSelect) renderHeader() string {
	parts := [4]string{"[<]", d.grid.Title(), "[o]", "[>]"}
	widths := [4]int{3, 23, 3, 3}
	var b strings.Builder
	b.WriteString(" ")
	for i, part := range parts {
		text := centerPad(part, widths[i])
		style := d.styles.Header
		if d.cursor.Row == 0 && d.cursor.Col == i {
			style = d.styles.Cursor
		}
		b.WriteString(style.Render(text))
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

func (d *DateSelect) renderMonthRow(row []grid.Cell, cursorRow int) string {
	var b strings.Builder
	b.WriteString(" ")
	for col, cell := range row {
		b.WriteString(d.renderCell(cell, cursorRow, col, 4))
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

func (d *DateSelect) renderCoarseRow(row []grid.Cell, cursorRow int) string {
	var b strings.Builder
	b.WriteString(" ")
	for col, cell := range row {
		b.WriteString(d.renderCell(cell, cursorRow, col, 12))
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

func (d *DateSelect) renderCell(cell grid.Cell, row, col, width int) string {
	text := centerPad(cell.Label, width)
	style := d.styles.Cell
	switch {
	case cell.Sentinel():
		style = d.styles.Sentinel
	case d.cursor.Row == row && d.cursor.Col == col:
		style = d.styles.Cursor
	case d.isSelected(cell):
		style = d.styles.Selected
	case d.inRange(cell):
		style = d.styles.InRange
	}
	return style.Render(text)
}

func (d *DateSelect) cellDate(cell grid.Cell) (chrono.Date, bool) {
	if d.grid.Scope != grid.ScopeMonth || cell.Sentinel() {
		return chrono.Date{}, false
	}
	return chrono.NewDate(d.grid.Anchor.Year, d.grid.Anchor.Month, cell.Value)
}

func (d *DateSelect) isSelected(cell grid.Cell) bool {
	if d.selected == nil {
		return false
	}
	date, ok := d.cellDate(cell)
	return ok && date == *d.selected
}

func (d *DateSelect) inRange(cell grid.Cell) bool {
	if d.rangeStart == nil || d.rangeEnd == nil {
		return false
	}
	date, ok := d.cellDate(cell)
	if !ok {
		return false
	}
	return !date.Before(*d.rangeStart) && !date.After(*d.rangeEnd)
}

func centerPad(s string, width int) string {
	if len(s) > width {
		s = s[:width]
	}
	left := (width - len(s)) / 2
	return fmt.Sprintf("%*s%-*s", left+len(s), s, width-left-len(s), "")
}
