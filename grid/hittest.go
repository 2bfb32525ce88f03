package grid

// Paint geometry for the calendar overlay. OffsetToCell inverts the
// View layout in pickers, so these constants are shared by both: change
// one side and the other must follow.
const (
	// SelectWidth is the fixed render width of the calendar overlay.
	SelectWidth = 39

	headerRowY  = 0
	prevStartX  = 1
	prevEndX    = 3
	titleStartX = 5
	titleEndX   = 27
	todayStartX = 29
	todayEndX   = 31
	nextStartX  = 33
	nextEndX    = 35

	// Month scope: weekday captions at y=2, week rows every other line
	// starting at y=4. Each day cell is 4 wide on a 5-column pitch.
	weekdayRowY   = 2
	monthFirstY   = 4
	monthRowPitch = 2
	dayCellStartX = 1
	dayCellWidth  = 4
	dayCellPitch  = 5

	// Coarse scopes (year/decade/century): 4 rows of 3 cells starting
	// at y=2. Each cell is 12 wide on a 13-column pitch.
	coarseFirstY    = 2
	coarseRowPitch  = 2
	coarseCellStart = 1
	coarseCellW     = 12
	coarseCellPitch = 13
)

// OffsetToCell maps a cell offset inside the calendar overlay to a
// cursor position. Offsets between cells, on captions, or outside the
// grid report false.
func OffsetToCell(g Grid, x, y int) (Cursor, bool) {
	if x < 0 || x >= SelectWidth || y < 0 {
		return Cursor{}, false
	}
	if y == headerRowY {
		return headerHit(x)
	}
	if g.Scope == ScopeMonth {
		return monthHit(g, x, y)
	}
	return coarseHit(g, x, y)
}

func headerHit(x int) (Cursor, bool) {
	switch {
	case x >= prevStartX && x <= prevEndX:
		return Cursor{Row: 0, Col: HeaderPrev}, true
	case x >= titleStartX && x <= titleEndX:
		return Cursor{Row: 0, Col: HeaderTitle}, true
	case x >= todayStartX && x <= todayEndX:
		return Cursor{Row: 0, Col: HeaderToday}, true
	case x >= nextStartX && x <= nextEndX:
		return Cursor{Row: 0, Col: HeaderNext}, true
	}
	return Cursor{}, false
}

func monthHit(g Grid, x, y int) (Cursor, bool) {
	if y < monthFirstY || (y-monthFirstY)%monthRowPitch != 0 {
		return Cursor{}, false
	}
	row := (y-monthFirstY)/monthRowPitch + 1
	if row > len(g.Rows) {
		return Cursor{}, false
	}
	rel := x - dayCellStartX
	if rel < 0 || rel%dayCellPitch >= dayCellWidth {
		return Cursor{}, false
	}
	col := rel / dayCellPitch
	if col >= 7 {
		return Cursor{}, false
	}
	return Cursor{Row: row, Col: col}, true
}

func coarseHit(g Grid, x, y int) (Cursor, bool) {
	if y < coarseFirstY || (y-coarseFirstY)%coarseRowPitch != 0 {
		return Cursor{}, false
	}
	row := (y-coarseFirstY)/coarseRowPitch + 1
	if row > len(g.Rows) {
		return Cursor{}, false
	}
	rel := x - coarseCellStart
	if rel < 0 || rel%coarseCellPitch >= coarseCellW {
		return Cursor{}, false
	}
	col := rel / coarseCellPitch
	if col > 2 {
		return Cursor{}, false
	}
	return Cursor{Row: row, Col: col}, true
}
