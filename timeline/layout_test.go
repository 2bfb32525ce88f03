package timeline

import "testing"

func TestAssignLanesTiled(t *testing.T) {
	entries := []Entry{
		{ID: "a", Start: 0, End: 100},
		{ID: "b", Start: 50, End: 150},
		{ID: "c", Start: 100, End: 200},
		{ID: "d", Start: 160, End: 220},
	}

	placements := AssignLanes(entries, true)
	lanes := map[string]int{}
	for _, p := range placements {
		lanes[p.Entry.ID] = p.Lane
	}

	if lanes["a"] != 0 {
		t.Errorf("lane of a = %d, want 0", lanes["a"])
	}
	if lanes["b"] != 1 {
		t.Errorf("overlapping b should get lane 1, got %d", lanes["b"])
	}
	// c starts exactly where a ends, so lane 0 is free again.
	if lanes["c"] != 0 {
		t.Errorf("lane of c = %d, want 0", lanes["c"])
	}
	if lanes["d"] != 1 {
		t.Errorf("lane of d = %d, want 1", lanes["d"])
	}

	// No two entries in the same lane overlap.
	for i, p := range placements {
		for _, q := range placements[i+1:] {
			if p.Lane == q.Lane && p.Entry.Overlaps(q.Entry) {
				t.Errorf("entries %s and %s overlap in lane %d",
					p.Entry.ID, q.Entry.ID, p.Lane)
			}
		}
	}

	if got := LaneCount(placements); got != 2 {
		t.Errorf("LaneCount = %d, want 2", got)
	}
}

func TestAssignLanesStacked(t *testing.T) {
	entries := []Entry{
		{ID: "a", Start: 0, End: 100},
		{ID: "b", Start: 50, End: 150},
	}
	for _, p := range AssignLanes(entries, false) {
		if p.Lane != 0 {
			t.Errorf("stacked entry %s in lane %d", p.Entry.ID, p.Lane)
		}
	}
}

func TestMoveClamped(t *testing.T) {
	e := Entry{ID: "a", Start: 100, End: 200}

	tests := []struct {
		name  string
		delta int
		start int
		end   int
	}{
		{"inside", 50, 150, 250},
		{"left edge", -500, 0, 100},
		{"right edge", 5000, 900, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Move(e, tt.delta, 1000)
			if got.Start != tt.start || got.End != tt.end {
				t.Errorf("Move = [%d, %d), want [%d, %d)",
					got.Start, got.End, tt.start, tt.end)
			}
			if got.Length() != e.Length() {
				t.Errorf("Move changed the extent to %d", got.Length())
			}
		})
	}
}

func TestResizeClamped(t *testing.T) {
	e := Entry{ID: "a", Start: 100, End: 200}

	got := Resize(e, 300, 1000, false)
	if got.End != 500 {
		t.Errorf("grown end = %d, want 500", got.End)
	}

	got = Resize(e, 5000, 1000, false)
	if got.End != 1000 {
		t.Errorf("end past axis = %d, want 1000", got.End)
	}

	got = Resize(e, -500, 1000, false)
	if got.End != 101 {
		t.Errorf("end collapsed to %d, want 101", got.End)
	}

	got = Resize(e, -500, 1000, true)
	if got.Start != 0 {
		t.Errorf("start past axis = %d, want 0", got.Start)
	}

	got = Resize(e, 500, 1000, true)
	if got.Start != 199 {
		t.Errorf("start collapsed to %d, want 199", got.Start)
	}
}

func TestDraftLifecycle(t *testing.T) {
	m := New(3600, 60)

	m.BeginDraft(600)
	if _, ok := m.Draft(); !ok {
		t.Fatal("BeginDraft placed no draft")
	}

	m.StretchDraft(1200)
	draft, _ := m.Draft()
	if draft.Start != 600 || draft.End != 1200 {
		t.Errorf("draft = [%d, %d), want [600, 1200)", draft.Start, draft.End)
	}

	// Stretching behind the anchor is ignored.
	m.StretchDraft(300)
	draft, _ = m.Draft()
	if draft.End != 1200 {
		t.Errorf("backward stretch moved end to %d", draft.End)
	}

	cmd := m.CommitDraft()
	if cmd == nil {
		t.Fatal("commit produced no message")
	}
	msg, ok := cmd().(EntryCreatedMsg)
	if !ok {
		t.Fatalf("message type %T", cmd())
	}
	if msg.Entry.Start != 600 || msg.Entry.End != 1200 {
		t.Errorf("created entry = [%d, %d)", msg.Entry.Start, msg.Entry.End)
	}
	if _, ok := m.Draft(); ok {
		t.Error("draft survived the commit")
	}
	if len(m.Entries()) != 1 {
		t.Errorf("entry count = %d, want 1", len(m.Entries()))
	}

	m.BeginDraft(2000)
	m.CancelDraft()
	if _, ok := m.Draft(); ok {
		t.Error("draft survived the cancel")
	}
	if m.CommitDraft() != nil {
		t.Error("commit after cancel should be a no-op")
	}
}

func TestDraftOutsideAxis(t *testing.T) {
	m := New(3600, 60)
	m.BeginDraft(-5)
	if _, ok := m.Draft(); ok {
		t.Error("draft before the axis start")
	}
	m.BeginDraft(3600)
	if _, ok := m.Draft(); ok {
		t.Error("draft past the axis end")
	}
}
