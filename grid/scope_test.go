package grid

import (
	"testing"

	"tempus/chrono"
)

func mustParse(t *testing.T, s string) chrono.Date {
	t.Helper()
	d, ok := chrono.ParseDate(s)
	if !ok {
		t.Fatalf("bad test date %q", s)
	}
	return d
}

func TestScopeZoomSaturation(t *testing.T) {
	if got := ScopeCentury.ZoomOut(); got != ScopeCentury {
		t.Errorf("ZoomOut at century = %v", got)
	}
	if got := ScopeMonth.ZoomIn(); got != ScopeMonth {
		t.Errorf("ZoomIn at month = %v", got)
	}
	if got := ScopeMonth.ZoomOut(); got != ScopeYear {
		t.Errorf("ZoomOut from month = %v, want year", got)
	}
	if got := ScopeCentury.ZoomIn(); got != ScopeDecade {
		t.Errorf("ZoomIn from century = %v, want decade", got)
	}
}

func TestBuildMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		anchor    string
		rows      int
		leading   int
		lastValue int
	}{
		// June 2026 starts on a Monday.
		{"aligned month", "2026-06-15", 5, 0, 30},
		// March 2025 starts on a Saturday.
		{"late start", "2025-03-14", 6, 5, 31},
		// February 2027 starts on a Monday with 28 days.
		{"four row february", "2027-02-10", 4, 0, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := mustParse(t, tt.anchor)
			g := Build(ScopeMonth, anchor)
			if len(g.Rows) != tt.rows {
				t.Fatalf("row count = %d, want %d", len(g.Rows), tt.rows)
			}
			for r, row := range g.Rows {
				if len(row) != 7 {
					t.Errorf("row %d width = %d, want 7", r, len(row))
				}
			}
			for col := 0; col < tt.leading; col++ {
				if !g.Rows[0][col].Sentinel() {
					t.Errorf("row 0 col %d should be a sentinel", col)
				}
			}
			if tt.leading < 7 && g.Rows[0][tt.leading].Value != 1 {
				t.Errorf("first day cell value = %d, want 1", g.Rows[0][tt.leading].Value)
			}
			last := lastNonSentinel(g)
			if last.Value != tt.lastValue {
				t.Errorf("last day value = %d, want %d", last.Value, tt.lastValue)
			}
		})
	}
}

func lastNonSentinel(g Grid) Cell {
	for r := len(g.Rows) - 1; r >= 0; r-- {
		for c := len(g.Rows[r]) - 1; c >= 0; c-- {
			if !g.Rows[r][c].Sentinel() {
				return g.Rows[r][c]
			}
		}
	}
	return Cell{}
}

func TestBuildCoarseGrids(t *testing.T) {
	anchor := mustParse(t, "2025-03-14")

	year := Build(ScopeYear, anchor)
	if len(year.Rows) != 4 || len(year.Rows[0]) != 3 {
		t.Fatalf("year grid shape = %dx%d, want 4x3", len(year.Rows), len(year.Rows[0]))
	}
	if year.Rows[0][0].Value != 1 || year.Rows[3][2].Value != 12 {
		t.Error("year grid should run January through December")
	}

	decade := Build(ScopeDecade, anchor)
	if decade.Rows[0][0].Value != 2019 {
		t.Errorf("decade grid starts at %d, want 2019", decade.Rows[0][0].Value)
	}
	if decade.Rows[3][2].Value != 2030 {
		t.Errorf("decade grid ends at %d, want 2030", decade.Rows[3][2].Value)
	}

	century := Build(ScopeCentury, anchor)
	if century.Rows[0][0].Value != 1990 {
		t.Errorf("century grid starts at %d, want 1990", century.Rows[0][0].Value)
	}
	if century.Rows[3][2].Value != 2100 {
		t.Errorf("century grid ends at %d, want 2100", century.Rows[3][2].Value)
	}
}

func TestTitleAndStep(t *testing.T) {
	anchor := mustParse(t, "2025-03-14")

	tests := []struct {
		scope Scope
		title string
		years int
	}{
		{ScopeMonth, "March 2025", 0},
		{ScopeYear, "2025", 1},
		{ScopeDecade, "2020 <-> 2029", 10},
		{ScopeCentury, "2000 <-> 2099", 100},
	}

	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			g := Build(tt.scope, anchor)
			if got := g.Title(); got != tt.title {
				t.Errorf("Title = %q, want %q", got, tt.title)
			}
			step := g.Step()
			if tt.scope == ScopeMonth {
				if step.Months != 1 {
					t.Errorf("month step = %+v, want one month", step)
				}
			} else if step.Years != tt.years {
				t.Errorf("step years = %d, want %d", step.Years, tt.years)
			}
		})
	}
}
