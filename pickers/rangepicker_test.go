package pickers

import (
	"testing"

	"tempus/chrono"
)

func mustDate(t *testing.T, s string) chrono.Date {
	t.Helper()
	d, ok := chrono.ParseDate(s)
	if !ok {
		t.Fatalf("bad test date %q", s)
	}
	return d
}

func TestDateRangePickerLockScenario(t *testing.T) {
	p := NewDateRangePicker(fixedClock())

	p.SetStart(mustDate(t, "2025-02-01"))
	p.SetEnd(mustDate(t, "2025-02-11"))

	if cmd := p.ToggleLock(); cmd == nil {
		t.Fatal("lock toggle with both endpoints failed")
	}
	if !p.Locked() {
		t.Fatal("picker should be locked")
	}

	// Moving the start endpoint drags the end along by the captured
	// ten-day span.
	p.SetStart(mustDate(t, "2025-03-01"))
	start, startOk, end, endOk := p.Range()
	if !startOk || !endOk {
		t.Fatal("endpoints lost after locked update")
	}
	if start != mustDate(t, "2025-03-01") || end != mustDate(t, "2025-03-11") {
		t.Errorf("range = %v..%v, want 2025-03-01..2025-03-11", start, end)
	}

	// The text entries mirror the reconciled values.
	if got, _ := p.start.Date(); got != start {
		t.Errorf("start entry = %v, want %v", got, start)
	}
	if got, _ := p.end.Date(); got != end {
		t.Errorf("end entry = %v, want %v", got, end)
	}

	// Unlock and move the start; the end stays put.
	p.ToggleLock()
	p.SetStart(mustDate(t, "2025-03-05"))
	_, _, end, _ = p.Range()
	if end != mustDate(t, "2025-03-11") {
		t.Errorf("end moved to %v without a lock", end)
	}
}

func TestDateRangePickerLockNeedsBothEndpoints(t *testing.T) {
	p := NewDateRangePicker(fixedClock())
	p.SetStart(mustDate(t, "2025-02-01"))

	if cmd := p.ToggleLock(); cmd != nil {
		t.Error("lock with a single endpoint should fail silently")
	}
	if p.Locked() {
		t.Error("picker locked without both endpoints")
	}
}

func TestDateRangePickerCalendarRouting(t *testing.T) {
	p := NewDateRangePicker(fixedClock())

	p, _ = p.Update(DateSelectedMsg{Date: mustDate(t, "2025-02-01")})
	p, _ = p.Update(DateSelectedMsg{Date: mustDate(t, "2025-02-11"), Alt: true})

	start, startOk, end, endOk := p.Range()
	if !startOk || start != mustDate(t, "2025-02-01") {
		t.Errorf("start = %v (ok=%v)", start, startOk)
	}
	if !endOk || end != mustDate(t, "2025-02-11") {
		t.Errorf("alt selection should set the end, got %v (ok=%v)", end, endOk)
	}
}

func TestDateRangePickerPinnedSpan(t *testing.T) {
	p := NewDateRangePickerWithSpan(fixedClock(), chrono.Weeks(1))
	if !p.Locked() {
		t.Fatal("pinned-span picker should start locked")
	}

	p.SetStart(mustDate(t, "2025-02-01"))
	_, _, end, endOk := p.Range()
	if !endOk || end != mustDate(t, "2025-02-08") {
		t.Errorf("end = %v (%v), want derived 2025-02-08", end, endOk)
	}
}

func TestDateRangePickerTodayClamped(t *testing.T) {
	// The fixed clock says 2025-03-14.
	p := NewDateRangePicker(fixedClock())
	p.SetEnd(mustDate(t, "2025-02-11"))

	// Today lands after the end, so the start clamps to it.
	p, _ = p.Update(key("ctrl+t"))
	start, startOk, end, _ := p.Range()
	if !startOk || start != mustDate(t, "2025-02-11") {
		t.Errorf("start = %v (%v), want clamp to 2025-02-11", start, startOk)
	}
	if end != mustDate(t, "2025-02-11") {
		t.Errorf("end moved to %v", end)
	}

	// The other direction: today before the start clamps the end up.
	p = NewDateRangePicker(fixedClock())
	p.SetStart(mustDate(t, "2025-05-01"))
	p, _ = p.Update(key("tab"))
	p, _ = p.Update(key("ctrl+t"))
	_, _, end, endOk := p.Range()
	if !endOk || end != mustDate(t, "2025-05-01") {
		t.Errorf("end = %v (%v), want clamp to 2025-05-01", end, endOk)
	}
}

func TestDateRangePickerClear(t *testing.T) {
	p := NewDateRangePicker(fixedClock())
	p.SetStart(mustDate(t, "2025-02-01"))
	p.SetEnd(mustDate(t, "2025-02-11"))
	p.ToggleLock()
	p.Clear()

	_, startOk, _, endOk := p.Range()
	if startOk || endOk {
		t.Error("Clear left endpoints behind")
	}
	if !p.Locked() {
		t.Error("Clear should keep the lock engaged")
	}
}
