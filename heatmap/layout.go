package heatmap

// Fixed paint geometry for the heatmap. The View code and the hit
// testing below share these constants; they must change together.
//
// Tiles are two cells wide on a three-column pitch starting at x=4,
// one weekday per odd row from y=1 to y=13. Week numbers sit on y=15
// and month names on y=17.
const (
	tileStartX  = 4
	tilePitchX  = 3
	tileEndX    = 161
	tileFirstY  = 1
	tileLastY   = 13
	weekRowY    = 15
	monthRowY   = 17
	monthPitchX = 13
	monthEndX   = 148

	// ContentWidth and ContentHeight are the full render dimensions.
	ContentWidth  = 163
	ContentHeight = 18
)

// CursorAt maps a cell offset inside the heatmap to the cursor it
// addresses: a day tile, a week-number slot, or a month name. Offsets
// outside all three regions miss.
func CursorAt(x, y int) (Cursor, bool) {
	if c, ok := tileAt(x, y); ok {
		return c, true
	}
	if c, ok := weekAt(x, y); ok {
		return c, true
	}
	return monthAt(x, y)
}

func tileAt(x, y int) (Cursor, bool) {
	if x < tileStartX || x > tileEndX || y < tileFirstY || y > tileLastY {
		return Cursor{}, false
	}
	if x%tilePitchX == 0 || y%2 == 0 {
		return Cursor{}, false
	}
	return Cursor{
		Week: (x-tileStartX)/tilePitchX + 1,
		Day:  (y-tileFirstY)/2 + 1,
	}, true
}

func weekAt(x, y int) (Cursor, bool) {
	if y != weekRowY || x < tileStartX || x > tileEndX {
		return Cursor{}, false
	}
	if (x-tileStartX)%tilePitchX > 1 {
		return Cursor{}, false
	}
	return Cursor{Week: (x-tileStartX)/tilePitchX + 1, Day: 8}, true
}

func monthAt(x, y int) (Cursor, bool) {
	if y != monthRowY || x < 3 || x > monthEndX {
		return Cursor{}, false
	}
	month, rem := (x-3)/monthPitchX, (x-3)%monthPitchX
	if rem > 2 || month+1 > 12 {
		return Cursor{}, false
	}
	return Cursor{
		Week:  (x-tileStartX)/tilePitchX + 1,
		Day:   9,
		Month: month + 1,
	}, true
}
