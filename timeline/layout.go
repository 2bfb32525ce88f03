// Package timeline lays out duration entries along a fixed-length
// axis: lane assignment for overlapping intervals, clamped move and
// resize, and a provisional entry lifecycle for drag-to-create.
package timeline

import "sort"

// Entry is a half-open interval [Start, End) on the timeline axis,
// measured in axis units (typically seconds).
type Entry struct {
	ID    string
	Start int
	End   int
}

// Length returns the entry's extent in axis units.
func (e Entry) Length() int { return e.End - e.Start }

// Overlaps reports whether two half-open intervals intersect.
func (e Entry) Overlaps(other Entry) bool {
	return e.Start < other.End && other.Start < e.End
}

// Placement is an entry with its assigned lane.
type Placement struct {
	Entry Entry
	Lane  int
}

// AssignLanes distributes entries over lanes. In tiled mode
// overlapping entries get distinct lanes, chosen greedily by earliest
// start so the result is stable; otherwise everything stacks in lane
// zero and overlap is the renderer's problem.
func AssignLanes(entries []Entry, tiled bool) []Placement {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	placements := make([]Placement, 0, len(sorted))
	if !tiled {
		for _, e := range sorted {
			placements = append(placements, Placement{Entry: e})
		}
		return placements
	}

	// laneEnds[i] is the End of the last entry placed in lane i.
	var laneEnds []int
	for _, e := range sorted {
		lane := -1
		for i, end := range laneEnds {
			if end <= e.Start {
				lane = i
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, 0)
		}
		laneEnds[lane] = e.End
		placements = append(placements, Placement{Entry: e, Lane: lane})
	}
	return placements
}

// LaneCount returns how many lanes a placement set occupies.
func LaneCount(placements []Placement) int {
	max := 0
	for _, p := range placements {
		if p.Lane+1 > max {
			max = p.Lane + 1
		}
	}
	return max
}

// Move shifts an entry by delta units, sliding it back inside
// [0, length] without changing its extent.
func Move(e Entry, delta, length int) Entry {
	size := e.Length()
	start := e.Start + delta
	if start < 0 {
		start = 0
	}
	if start+size > length {
		start = length - size
	}
	return Entry{ID: e.ID, Start: start, End: start + size}
}

// Resize adjusts one edge by delta units. The moving edge never
// crosses the other one (minimum extent 1) and never leaves the axis.
func Resize(e Entry, delta, length int, fromStart bool) Entry {
	out := e
	if fromStart {
		out.Start += delta
		if out.Start < 0 {
			out.Start = 0
		}
		if out.Start >= out.End {
			out.Start = out.End - 1
		}
	} else {
		out.End += delta
		if out.End > length {
			out.End = length
		}
		if out.End <= out.Start {
			out.End = out.Start + 1
		}
	}
	return out
}
