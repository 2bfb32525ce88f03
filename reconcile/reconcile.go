// Package reconcile keeps linked start/end/span values mathematically
// consistent. A reconciler owns up to three values: the two endpoints
// and the span between them. With the lock engaged the span is pinned,
// so editing one endpoint shifts the other; unlocked, the span is only
// a derived read. Updates that would leave the representable date window
// are rejected and the previous state kept.
//
// The propagating flag is not a mutex: all mutation happens on the
// single UI goroutine. It only stops the cascade from re-entering the
// setter that triggered it.
package reconcile

import (
	"time"

	"tempus/chrono"
)

// DateRange reconciles a start date, an end date and the calendar delta
// between them. Zero dates mean "unset".
type DateRange struct {
	start chrono.Date
	end   chrono.Date
	span  chrono.DateDelta

	locked      bool
	propagating bool
}

// NewDateRange builds an unlocked reconciler with optional endpoints.
func NewDateRange(start, end chrono.Date) *DateRange {
	return &DateRange{start: start, end: end}
}

// NewLockedDateRange builds a reconciler with a pinned span. The span is
// sign-normalized; if one endpoint is set, the other is derived from it
// immediately.
func NewLockedDateRange(start, end chrono.Date, span chrono.DateDelta) *DateRange {
	r := &DateRange{start: start, end: end}
	r.SetSpan(span)
	return r
}

// Start returns the start date; ok is false when unset.
func (r *DateRange) Start() (chrono.Date, bool) {
	return r.start, !r.start.IsZero()
}

// End returns the end date; ok is false when unset.
func (r *DateRange) End() (chrono.Date, bool) {
	return r.end, !r.end.IsZero()
}

// Locked reports whether the span is pinned.
func (r *DateRange) Locked() bool { return r.locked }

// Span returns the pinned span when locked, or the derived end-start
// distance for display when both endpoints are set.
func (r *DateRange) Span() (chrono.DateDelta, bool) {
	if r.locked {
		return r.span, true
	}
	if r.start.IsZero() || r.end.IsZero() {
		return chrono.DateDelta{}, false
	}
	return chrono.Between(r.start, r.end), true
}

// SetStart assigns the start date. With the lock engaged the end date is
// shifted to preserve the span; if the shifted end would be out of
// range the whole update is rejected.
func (r *DateRange) SetStart(d chrono.Date) bool {
	if !d.IsZero() && !d.Valid() {
		return false
	}
	if r.locked && !r.propagating && !d.IsZero() {
		end, ok := d.Add(r.span)
		if !ok {
			return false
		}
		r.propagating = true
		ok = r.SetEnd(end)
		r.propagating = false
		if !ok {
			return false
		}
	}
	r.start = d
	return true
}

// SetEnd assigns the end date, shifting start under an engaged lock.
func (r *DateRange) SetEnd(d chrono.Date) bool {
	if !d.IsZero() && !d.Valid() {
		return false
	}
	if r.locked && !r.propagating && !d.IsZero() {
		start, ok := d.Add(r.span.Negate())
		if !ok {
			return false
		}
		r.propagating = true
		ok = r.SetStart(start)
		r.propagating = false
		if !ok {
			return false
		}
	}
	r.end = d
	return true
}

// SetSpan pins a new span, engaging the lock. The delta is
// sign-normalized to non-negative. Whichever endpoint is set drives the
// other; when the derived endpoint would be out of range the update is
// rejected and the previous span kept.
func (r *DateRange) SetSpan(span chrono.DateDelta) bool {
	span = span.Abs()
	switch {
	case !r.start.IsZero():
		end, ok := r.start.Add(span)
		if !ok {
			return false
		}
		r.end = end
	case !r.end.IsZero():
		start, ok := r.end.Add(span.Negate())
		if !ok {
			return false
		}
		r.start = start
	}
	r.span = span
	r.locked = true
	return true
}

// EngageLock captures the current end-start distance as the pinned
// span. Both endpoints must be present.
func (r *DateRange) EngageLock() bool {
	if r.start.IsZero() || r.end.IsZero() {
		return false
	}
	r.span = chrono.Between(r.start, r.end).Abs()
	r.locked = true
	return true
}

// DisengageLock releases the span; endpoints move independently again.
func (r *DateRange) DisengageLock() {
	r.locked = false
	r.span = chrono.DateDelta{}
}

// Clear unsets both endpoints. The lock state is untouched so a locked
// picker keeps its span across a clear.
func (r *DateRange) Clear() {
	r.start = chrono.Date{}
	r.end = chrono.Date{}
}

// TimeRange reconciles start/end instants with a fixed duration span.
// Arithmetic goes through the time package so daylight-saving shifts
// are handled there. Zero times mean "unset".
type TimeRange struct {
	start time.Time
	end   time.Time
	span  time.Duration

	locked      bool
	propagating bool
}

// NewTimeRange builds an unlocked reconciler with optional endpoints.
func NewTimeRange(start, end time.Time) *TimeRange {
	return &TimeRange{start: start, end: end}
}

// NewLockedTimeRange builds a reconciler with a pinned duration.
func NewLockedTimeRange(start, end time.Time, span time.Duration) *TimeRange {
	r := &TimeRange{start: start, end: end}
	r.SetSpan(span)
	return r
}

// Start returns the start instant; ok is false when unset.
func (r *TimeRange) Start() (time.Time, bool) {
	return r.start, !r.start.IsZero()
}

// End returns the end instant; ok is false when unset.
func (r *TimeRange) End() (time.Time, bool) {
	return r.end, !r.end.IsZero()
}

// Locked reports whether the duration is pinned.
func (r *TimeRange) Locked() bool { return r.locked }

// Span returns the pinned duration when locked, or the derived
// end-start duration when both endpoints are set.
func (r *TimeRange) Span() (time.Duration, bool) {
	if r.locked {
		return r.span, true
	}
	if r.start.IsZero() || r.end.IsZero() {
		return 0, false
	}
	return r.end.Sub(r.start), true
}

func inRange(t time.Time) bool {
	return t.Year() >= chrono.MinYear && t.Year() <= chrono.MaxYear
}

// SetStart assigns the start instant, shifting end under an engaged
// lock. Out-of-range results reject the update.
func (r *TimeRange) SetStart(t time.Time) bool {
	if !t.IsZero() && !inRange(t) {
		return false
	}
	if r.locked && !r.propagating && !t.IsZero() {
		end := t.Add(r.span)
		if !inRange(end) {
			return false
		}
		r.propagating = true
		ok := r.SetEnd(end)
		r.propagating = false
		if !ok {
			return false
		}
	}
	r.start = t
	return true
}

// SetEnd assigns the end instant, shifting start under an engaged lock.
func (r *TimeRange) SetEnd(t time.Time) bool {
	if !t.IsZero() && !inRange(t) {
		return false
	}
	if r.locked && !r.propagating && !t.IsZero() {
		start := t.Add(-r.span)
		if !inRange(start) {
			return false
		}
		r.propagating = true
		ok := r.SetStart(start)
		r.propagating = false
		if !ok {
			return false
		}
	}
	r.end = t
	return true
}

// SetSpan pins a new duration, engaging the lock and deriving whichever
// endpoint is missing (start preferred as the driver).
func (r *TimeRange) SetSpan(span time.Duration) bool {
	if span < 0 {
		span = -span
	}
	switch {
	case !r.start.IsZero():
		end := r.start.Add(span)
		if !inRange(end) {
			return false
		}
		r.end = end
	case !r.end.IsZero():
		start := r.end.Add(-span)
		if !inRange(start) {
			return false
		}
		r.start = start
	}
	r.span = span
	r.locked = true
	return true
}

// EngageLock captures the current end-start duration as the pinned
// span. Both endpoints must be present.
func (r *TimeRange) EngageLock() bool {
	if r.start.IsZero() || r.end.IsZero() {
		return false
	}
	r.span = r.end.Sub(r.start)
	if r.span < 0 {
		r.span = -r.span
	}
	r.locked = true
	return true
}

// DisengageLock releases the duration.
func (r *TimeRange) DisengageLock() {
	r.locked = false
	r.span = 0
}

// Clear unsets both endpoints, keeping the lock state.
func (r *TimeRange) Clear() {
	r.start = time.Time{}
	r.end = time.Time{}
}
