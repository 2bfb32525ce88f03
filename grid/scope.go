// Package grid builds the selectable calendar grids behind the date
// picker overlay and drives keyboard navigation across them.
package grid

import (
	"fmt"
	"time"

	"tempus/chrono"
)

// Scope is the calendar zoom level. Zooming out widens the scope up to
// a century; zooming in narrows it back down to a single month.
type Scope int

const (
	ScopeMonth Scope = iota + 1
	ScopeYear
	ScopeDecade
	ScopeCentury
)

func (s Scope) String() string {
	switch s {
	case ScopeMonth:
		return "month"
	case ScopeYear:
		return "year"
	case ScopeDecade:
		return "decade"
	case ScopeCentury:
		return "century"
	}
	return fmt.Sprintf("scope(%d)", int(s))
}

// ZoomOut widens the scope by one level, saturating at century.
func (s Scope) ZoomOut() Scope {
	if s >= ScopeCentury {
		return ScopeCentury
	}
	return s + 1
}

// ZoomIn narrows the scope by one level, saturating at month.
func (s Scope) ZoomIn() Scope {
	if s <= ScopeMonth {
		return ScopeMonth
	}
	return s - 1
}

// Cell is one selectable slot in a grid. A sentinel cell (empty label)
// pads month rows where the day belongs to an adjacent month; landing a
// cursor on one is legal but selecting it does nothing.
type Cell struct {
	Label string
	Value int
}

// Sentinel reports whether the cell has no selectable value.
func (c Cell) Sentinel() bool { return c.Label == "" }

// Grid is the 2D selection surface for one scope around an anchor date.
// Month rows are always 7 wide (Monday first); coarser scopes are 4x3.
type Grid struct {
	Scope  Scope
	Anchor chrono.Date
	Rows   [][]Cell
}

// HeaderWidth is the cell count of the navigation header row: previous
// arrow, title, today target and next arrow.
const HeaderWidth = 4

// Header cell columns.
const (
	HeaderPrev = iota
	HeaderTitle
	HeaderToday
	HeaderNext
)

// Build produces the grid for a scope and anchor date. It is a pure
// function of its inputs.
func Build(scope Scope, anchor chrono.Date) Grid {
	g := Grid{Scope: scope, Anchor: anchor}
	switch scope {
	case ScopeYear:
		g.Rows = monthRows()
	case ScopeDecade:
		g.Rows = yearRows(decadeStart(anchor.Year) - 1)
	case ScopeCentury:
		g.Rows = decadeRows(centuryStart(anchor.Year) - 10)
	default:
		g.Rows = monthWeeks(anchor)
	}
	return g
}

// Title is the header label for the grid, e.g. "March 2025" in month
// scope or "1990 <-> 1999" in decade scope.
func (g Grid) Title() string {
	switch g.Scope {
	case ScopeYear:
		return fmt.Sprintf("%d", g.Anchor.Year)
	case ScopeDecade:
		start := decadeStart(g.Anchor.Year)
		return fmt.Sprintf("%d <-> %d", start, start+9)
	case ScopeCentury:
		start := centuryStart(g.Anchor.Year)
		return fmt.Sprintf("%d <-> %d", start, start+99)
	}
	return fmt.Sprintf("%s %d", g.Anchor.Month, g.Anchor.Year)
}

// Step is the anchor movement for one press of the prev/next arrows.
func (g Grid) Step() chrono.DateDelta {
	switch g.Scope {
	case ScopeYear:
		return chrono.Years(1)
	case ScopeDecade:
		return chrono.Years(10)
	case ScopeCentury:
		return chrono.Years(100)
	}
	return chrono.Months(1)
}

// RowLen returns the width of a cursor row; row 0 is the header.
func (g Grid) RowLen(row int) int {
	if row == 0 {
		return HeaderWidth
	}
	if row < 1 || row > len(g.Rows) {
		return 0
	}
	return len(g.Rows[row-1])
}

// monthWeeks lays the anchor's month out as Monday-aligned week rows of
// exactly 7 cells, with sentinels padding the partial first and last
// weeks.
func monthWeeks(anchor chrono.Date) [][]Cell {
	first, _ := chrono.NewDate(anchor.Year, anchor.Month, 1)
	lead := int(first.Weekday()+6) % 7 // Monday = 0
	total := chrono.DaysInMonth(anchor.Year, anchor.Month)

	var rows [][]Cell
	row := make([]Cell, 0, 7)
	for i := 0; i < lead; i++ {
		row = append(row, Cell{})
	}
	for day := 1; day <= total; day++ {
		row = append(row, Cell{Label: fmt.Sprintf("%d", day), Value: day})
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]Cell, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, Cell{})
		}
		rows = append(rows, row)
	}
	return rows
}

func monthRows() [][]Cell {
	rows := make([][]Cell, 4)
	for r := range rows {
		rows[r] = make([]Cell, 3)
		for c := range rows[r] {
			m := time.Month(r*3 + c + 1)
			rows[r][c] = Cell{Label: m.String(), Value: int(m)}
		}
	}
	return rows
}

func yearRows(start int) [][]Cell {
	rows := make([][]Cell, 4)
	for r := range rows {
		rows[r] = make([]Cell, 3)
		for c := range rows[r] {
			year := start + r*3 + c
			rows[r][c] = Cell{Label: fmt.Sprintf("%d", year), Value: year}
		}
	}
	return rows
}

func decadeRows(start int) [][]Cell {
	rows := make([][]Cell, 4)
	for r := range rows {
		rows[r] = make([]Cell, 3)
		for c := range rows[r] {
			decade := start + (r*3+c)*10
			rows[r][c] = Cell{
				Label: fmt.Sprintf("%d-%d", decade, decade+9),
				Value: decade,
			}
		}
	}
	return rows
}

func decadeStart(year int) int { return year / 10 * 10 }

func centuryStart(year int) int { return year / 100 * 100 }
