package grid

import "math"

// Direction is a cursor movement command.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Cursor is a keyboard position over a Grid. Row 0 addresses the 4-cell
// navigation header; rows 1..len(grid) address grid rows. The zero value
// is the default cursor placed on focus.
type Cursor struct {
	Row int
	Col int
}

// Confine clamps the cursor into the grid bounds. Confining an already
// confined cursor is a no-op.
func (c Cursor) Confine(g Grid) Cursor {
	row := c.Row
	if row < 0 {
		row = 0
	}
	if row > len(g.Rows) {
		row = len(g.Rows)
	}
	col := c.Col
	if col < 0 {
		col = 0
	}
	if max := g.RowLen(row) - 1; col > max {
		col = max
	}
	return Cursor{Row: row, Col: col}
}

// Move applies a directional step. Horizontal movement stops at row
// edges. Vertical movement crossing the header/body boundary re-projects
// the column proportionally between the 4-wide header and the target
// row's width, so the cursor lands on the visually nearest cell.
func (c Cursor) Move(g Grid, dir Direction) Cursor {
	switch dir {
	case Up:
		return c.vertical(g, -1)
	case Down:
		return c.vertical(g, 1)
	case Right:
		return c.horizontal(g, 1)
	case Left:
		return c.horizontal(g, -1)
	}
	return c
}

// CanMove reports whether a move in the given direction changes the
// cursor, letting callers disable navigation at the edges.
func (c Cursor) CanMove(g Grid, dir Direction) bool {
	return c.Move(g, dir) != c
}

func (c Cursor) vertical(g Grid, delta int) Cursor {
	row := c.Row + delta
	if row < 0 || row > len(g.Rows) {
		return c
	}
	col := c.Col
	if row == 0 && c.Row != 0 {
		col = reproject(c.Col, g.RowLen(c.Row), HeaderWidth)
	} else if c.Row == 0 && row != 0 {
		col = reproject(c.Col, HeaderWidth, g.RowLen(row))
	}
	return Cursor{Row: row, Col: col}.Confine(g)
}

func (c Cursor) horizontal(g Grid, delta int) Cursor {
	col := c.Col + delta
	if col < 0 || col >= g.RowLen(c.Row) {
		return c
	}
	return Cursor{Row: c.Row, Col: col}.Confine(g)
}

// reproject maps a column between rows of different widths so relative
// position is preserved (e.g. header cell 2 of 4 lands mid-row in a
// 7-wide week).
func reproject(col, from, to int) int {
	if from <= 0 {
		return 0
	}
	return int(math.Ceil(float64(col) / float64(from) * float64(to)))
}

// TargetKind classifies what sits under the cursor.
type TargetKind int

const (
	// TargetNone marks a sentinel cell; selection is a caller no-op.
	TargetNone TargetKind = iota
	// TargetPrev is the header arrow stepping the anchor backwards.
	TargetPrev
	// TargetTitle is the header title; selecting zooms the scope out,
	// alt-selecting zooms in.
	TargetTitle
	// TargetToday is the header icon jumping to the current value.
	TargetToday
	// TargetNext is the header arrow stepping the anchor forwards.
	TargetNext
	// TargetCell is a concrete grid value.
	TargetCell
)

// Target is the resolved meaning of a cursor position.
type Target struct {
	Kind TargetKind
	Cell Cell
}

// Resolve maps the cursor onto its selection target.
func (c Cursor) Resolve(g Grid) Target {
	if c.Row == 0 {
		switch c.Col {
		case HeaderPrev:
			return Target{Kind: TargetPrev}
		case HeaderTitle:
			return Target{Kind: TargetTitle}
		case HeaderToday:
			return Target{Kind: TargetToday}
		default:
			return Target{Kind: TargetNext}
		}
	}
	if c.Row < 1 || c.Row > len(g.Rows) || c.Col >= len(g.Rows[c.Row-1]) {
		return Target{Kind: TargetNone}
	}
	cell := g.Rows[c.Row-1][c.Col]
	if cell.Sentinel() {
		return Target{Kind: TargetNone}
	}
	return Target{Kind: TargetCell, Cell: cell}
}
