package chrono

// DateDelta is a calendar distance in years, months and days. Unlike a
// fixed duration it follows calendar rules when applied, so adding a
// month to January 15th lands on February 15th.
type DateDelta struct {
	Years  int
	Months int
	Days   int
}

// Days builds a pure day delta.
func Days(n int) DateDelta { return DateDelta{Days: n} }

// Weeks builds a delta of whole weeks.
func Weeks(n int) DateDelta { return DateDelta{Days: n * 7} }

// Months builds a pure month delta.
func Months(n int) DateDelta { return DateDelta{Months: n} }

// Years builds a pure year delta.
func Years(n int) DateDelta { return DateDelta{Years: n} }

// Between returns the whole-day delta from a to b. The result applied to
// a always lands exactly on b, which keeps locked ranges consistent.
func Between(a, b Date) DateDelta {
	return DateDelta{Days: a.DaysUntil(b)}
}

// IsZero reports whether the delta has no components.
func (d DateDelta) IsZero() bool {
	return d == DateDelta{}
}

// Abs sign-normalizes every component to be non-negative.
func (d DateDelta) Abs() DateDelta {
	abs := func(n int) int {
		if n < 0 {
			return -n
		}
		return n
	}
	return DateDelta{abs(d.Years), abs(d.Months), abs(d.Days)}
}

// Negate flips the sign of every component.
func (d DateDelta) Negate() DateDelta {
	return DateDelta{-d.Years, -d.Months, -d.Days}
}
