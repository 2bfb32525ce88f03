package heatmap

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
)

func demoClock() chrono.Clock {
	return chrono.FixedClock(time.Date(2025, time.March, 14, 12, 0, 0, 0, time.Local))
}

func TestManagerYearNavigation(t *testing.T) {
	m := NewManager(demoClock())
	if m.Year() != 2025 {
		t.Fatalf("initial year = %d, want 2025", m.Year())
	}

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"next year", "]", 2026},
		{"prev year", "[", 2025},
		{"five back", "{", 2020},
		{"five forward", "}", 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cmd tea.Cmd
			m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			if m.Year() != tt.want {
				t.Fatalf("year = %d, want %d", m.Year(), tt.want)
			}
			if cmd == nil {
				t.Fatal("year change produced no message")
			}
			msg, ok := cmd().(YearChangedMsg)
			if !ok || msg.Year != tt.want {
				t.Errorf("message = %#v, want YearChangedMsg{%d}", msg, tt.want)
			}
		})
	}
}

func TestManagerYearClamp(t *testing.T) {
	m := NewManager(demoClock())
	cmd, changed := m.SetYear(20000)
	if !changed || m.Year() != chrono.MaxYear {
		t.Errorf("year = %d, want clamp to %d", m.Year(), chrono.MaxYear)
	}
	if cmd == nil {
		t.Error("clamped change should still announce")
	}

	if _, changed := m.SetYear(99999); changed {
		t.Error("setting the same clamped year again should not announce")
	}
}

func TestManagerYearEntry(t *testing.T) {
	m := NewManager(demoClock())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	for _, r := range "1999" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Year() != 1999 {
		t.Fatalf("year after entry = %d, want 1999", m.Year())
	}
	if cmd == nil {
		t.Error("committed entry produced no message")
	}

	// Escape abandons the entry.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.Year() != 1999 {
		t.Errorf("escape changed the year to %d", m.Year())
	}
}

func TestWidgetDropsStaleResults(t *testing.T) {
	w := New(demoClock())
	raw := make(ActivityData, len(w.Dates()))
	for r, week := range w.Dates() {
		raw[r] = make([]*float64, len(week))
		for c := range week {
			if week[c] != nil {
				v := float64(c + 1)
				raw[r][c] = &v
			}
		}
	}

	stale := w.ProcessData(raw)().(DataProcessed)
	fresh := w.ProcessData(raw)().(DataProcessed)

	w, _ = w.Update(fresh)
	if w.data == nil {
		t.Fatal("fresh result was not applied")
	}

	w.data = nil
	w, _ = w.Update(stale)
	if w.data != nil {
		t.Error("stale result should be dropped")
	}
}

func TestWidgetCursorKeys(t *testing.T) {
	w := New(demoClock())

	// First arrow places the default cursor.
	w, _ = w.Update(tea.KeyMsg{Type: tea.KeyRight})
	if w.Cursor() == nil || *w.Cursor() != (Cursor{Week: 1, Day: 1}) {
		t.Fatalf("cursor after first key = %+v", w.Cursor())
	}

	w, _ = w.Update(tea.KeyMsg{Type: tea.KeyRight})
	if w.Cursor().Week != 2 {
		t.Errorf("cursor week = %d, want 2", w.Cursor().Week)
	}

	w, _ = w.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if w.Cursor() != nil {
		t.Error("escape should clear the cursor")
	}
}

func TestWidgetSelectEmitsDate(t *testing.T) {
	w := New(demoClock())
	c := Cursor{Week: 20, Day: 3}
	w.SetCursor(&c)

	w, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selection produced no message")
	}
	msg, ok := cmd().(DateSelectedMsg)
	if !ok {
		t.Fatalf("message type %T", cmd())
	}
	want, _ := chrono.NewDate(2025, time.May, 14)
	if msg.Date != want {
		t.Errorf("selected %v, want %v", msg.Date, want)
	}
	if w.Cursor() != nil {
		t.Error("selection should clear the cursor")
	}
}
