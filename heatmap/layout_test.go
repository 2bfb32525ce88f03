package heatmap

import "testing"

func TestCursorAt(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Cursor
		ok   bool
	}{
		{"first tile", 4, 1, Cursor{Week: 1, Day: 1}, true},
		{"first tile second cell", 5, 1, Cursor{Week: 1, Day: 1}, true},
		{"second week", 7, 1, Cursor{Week: 2, Day: 1}, true},
		{"sunday row", 4, 13, Cursor{Week: 1, Day: 7}, true},
		{"last week", 161, 1, Cursor{Week: 53, Day: 1}, true},
		{"gap between tiles", 6, 1, Cursor{}, false},
		{"gap between rows", 4, 2, Cursor{}, false},
		{"weekday label", 1, 1, Cursor{}, false},
		{"week number", 4, 15, Cursor{Week: 1, Day: 8}, true},
		{"late week number", 160, 15, Cursor{Week: 53, Day: 8}, true},
		{"gap in week row", 6, 15, Cursor{}, false},
		{"january name", 3, 17, Cursor{Week: 1, Day: 9, Month: 1}, true},
		{"february name", 16, 17, Cursor{Week: 5, Day: 9, Month: 2}, true},
		{"december name", 146, 17, Cursor{Week: 48, Day: 9, Month: 12}, true},
		{"gap in month row", 6, 17, Cursor{}, false},
		{"past december", 149, 17, Cursor{}, false},
		{"empty row", 4, 14, Cursor{}, false},
		{"outside grid", 200, 1, Cursor{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CursorAt(tt.x, tt.y)
			if ok != tt.ok || got != tt.want {
				t.Errorf("CursorAt(%d, %d) = %+v, %v; want %+v, %v",
					tt.x, tt.y, got, ok, tt.want, tt.ok)
			}
		})
	}
}
