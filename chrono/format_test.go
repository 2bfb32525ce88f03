package chrono

import (
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		withSeconds bool
		want        string
	}{
		{"zero", 0, true, "00:00:00"},
		{"zero no seconds", 0, false, "00:00"},
		{"two and a half hours", 9000, false, "02:30"},
		{"with seconds", 3661, true, "01:01:01"},
		{"past a day", 90000, false, "25:00"},
		{"negative", -3600, false, "-01:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSeconds(tt.total, tt.withSeconds)
			if got != tt.want {
				t.Errorf("FormatSeconds(%d, %v) = %q, want %q",
					tt.total, tt.withSeconds, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	got := FormatDuration(2*time.Hour + 30*time.Minute + 5*time.Second)
	if got != "02:30:05" {
		t.Errorf("FormatDuration = %q, want %q", got, "02:30:05")
	}
}
