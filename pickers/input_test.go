package pickers

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tempus/chrono"
)

func fixedClock() chrono.Clock {
	return chrono.FixedClock(time.Date(2025, time.March, 14, 12, 0, 0, 0, time.Local))
}

func typeDigits(t *testing.T, d *DateInput, digits string) *DateInput {
	t.Helper()
	for _, r := range digits {
		d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return d
}

func TestAppendDigit(t *testing.T) {
	tests := []struct {
		name  string
		value string
		r     rune
		want  string
		ok    bool
	}{
		{"first digit", "", '2', "2", true},
		{"separator auto inserted", "2025", '0', "2025-0", true},
		{"second separator", "2025-03", '1', "2025-03-1", true},
		{"full value rejects more", "2025-03-14", '5', "2025-03-14", false},
		{"non-digit rejected", "2025", 'x', "2025", false},
		{"month tens over limit", "2025", '2', "2025-", false},
		{"day tens over limit", "2025-03", '4', "2025-03-", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := appendDigit(tt.value, dateMask, dateLimits, tt.r)
			if got != tt.want || ok != tt.ok {
				t.Errorf("appendDigit(%q, %q) = %q, %v; want %q, %v",
					tt.value, tt.r, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTrimBack(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2025-03-1", "2025-03"},
		{"2025-03", "2025-0"},
		{"2", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := trimBack(tt.value, dateMask); got != tt.want {
			t.Errorf("trimBack(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDateInputTyping(t *testing.T) {
	d := NewDateInput(fixedClock())
	d.Focus()

	d = typeDigits(t, d, "20250314")
	got, ok := d.Date()
	if !ok {
		t.Fatal("complete entry should parse")
	}
	want, _ := chrono.ParseDate("2025-03-14")
	if got != want {
		t.Errorf("Date = %v, want %v", got, want)
	}

	// An impossible day leaves the last good value in place.
	d2 := NewDateInput(fixedClock())
	d2.Focus()
	d2 = typeDigits(t, d2, "20250230")
	if _, ok := d2.Date(); ok {
		t.Error("2025-02-30 should not commit a value")
	}
}

func TestDateInputSpinbox(t *testing.T) {
	clock := fixedClock()

	t.Run("day segment at end", func(t *testing.T) {
		d := NewDateInput(clock)
		d.Focus()
		date, _ := chrono.ParseDate("2025-03-14")
		d.SetDate(date)
		if !d.Adjust(1) {
			t.Fatal("day adjust rejected")
		}
		got, _ := d.Date()
		want, _ := chrono.ParseDate("2025-03-15")
		if got != want {
			t.Errorf("Date = %v, want %v", got, want)
		}
	})

	t.Run("year segment at home", func(t *testing.T) {
		d := NewDateInput(clock)
		d.Focus()
		date, _ := chrono.ParseDate("2025-03-14")
		d.SetDate(date)
		d, _ = d.Update(tea.KeyMsg{Type: tea.KeyHome})
		if !d.Adjust(1) {
			t.Fatal("year adjust rejected")
		}
		got, _ := d.Date()
		want, _ := chrono.ParseDate("2026-03-14")
		if got != want {
			t.Errorf("Date = %v, want %v", got, want)
		}
	})

	t.Run("year past window rejected", func(t *testing.T) {
		d := NewDateInput(clock)
		d.Focus()
		date, _ := chrono.ParseDate("9998-03-14")
		d.SetDate(date)
		d, _ = d.Update(tea.KeyMsg{Type: tea.KeyHome})
		if d.Adjust(1) {
			t.Error("adjust past year 9998 should be rejected")
		}
		got, _ := d.Date()
		if got != date {
			t.Errorf("rejected adjust changed value to %v", got)
		}
	})

	t.Run("invalid day rejected", func(t *testing.T) {
		d := NewDateInput(clock)
		d.Focus()
		date, _ := chrono.ParseDate("2025-02-28")
		d.SetDate(date)
		if d.Adjust(1) {
			t.Error("February 29th 2025 should be rejected")
		}
		got, _ := d.Date()
		if got != date {
			t.Errorf("rejected adjust changed value to %v", got)
		}
	})

	t.Run("empty value seeds from clock", func(t *testing.T) {
		d := NewDateInput(clock)
		d.Focus()
		// The cursor sits at position 0, so the first adjust edits the
		// year of the clock's today.
		if !d.Adjust(1) {
			t.Fatal("adjust on empty input rejected")
		}
		got, ok := d.Date()
		want, _ := chrono.ParseDate("2026-03-14")
		if !ok || got != want {
			t.Errorf("Date = %v (ok=%v), want %v", got, ok, want)
		}
	})
}

func TestDateTimeInputSpinbox(t *testing.T) {
	d := NewDateTimeInput(fixedClock())
	d.Focus()
	base, _ := chrono.ParseDateTime("2025-03-14 10:30:00")
	d.SetTime(base)

	// Cursor at the end addresses the seconds segment.
	if !d.Adjust(-1) {
		t.Fatal("second adjust rejected")
	}
	got, _ := d.Time()
	want, _ := chrono.ParseDateTime("2025-03-14 10:29:59")
	if !got.Equal(want) {
		t.Errorf("Time = %v, want %v", got, want)
	}
}

func TestDurationInput(t *testing.T) {
	d := NewDurationInput()

	if d.SetDuration(-time.Hour) {
		t.Error("negative duration should be rejected")
	}
	if !d.SetDuration(2*time.Hour + 30*time.Minute) {
		t.Fatal("SetDuration rejected a valid span")
	}
	got, ok := d.Duration()
	if !ok || got != 2*time.Hour+30*time.Minute {
		t.Errorf("Duration = %v (ok=%v)", got, ok)
	}

	// Seconds segment at the cursor end.
	d.Focus()
	if !d.Adjust(-1) {
		t.Fatal("adjust rejected")
	}
	got, _ = d.Duration()
	if got != 2*time.Hour+29*time.Minute+59*time.Second {
		t.Errorf("Duration after adjust = %v", got)
	}

	// Below zero is rejected.
	d2 := NewDurationInput()
	d2.Focus()
	d2.SetDuration(0)
	if d2.Adjust(-1) {
		t.Error("adjust below zero should be rejected")
	}
}

func TestParseDurationText(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"02:30:05", 2*time.Hour + 30*time.Minute + 5*time.Second, true},
		{"00:00:00", 0, true},
		{"99:59:59", 99*time.Hour + 59*time.Minute + 59*time.Second, true},
		{"02:75:00", 0, false},
		{"2:30:05", 0, false},
		{"02:30", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseDuration(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("parseDuration(%q) = %v, %v; want %v, %v",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
