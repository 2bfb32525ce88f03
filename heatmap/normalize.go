package heatmap

// ActivityData is a possibly-jagged week-by-weekday grid of samples.
// Nil entries are days without data (or days outside the display year)
// and survive every transformation in place.
type ActivityData [][]*float64

// Flatten concatenates the grid rows into one sequence.
func Flatten(data ActivityData) []*float64 {
	n := 0
	for _, row := range data {
		n += len(row)
	}
	flat := make([]*float64, 0, n)
	for _, row := range data {
		flat = append(flat, row...)
	}
	return flat
}

// Normalize linearly rescales all non-nil values to [0,1] against the
// observed min/max and inverts them, so the busiest day has the lowest
// value and blends closest to the activity color. When every value is
// identical the scale collapses to 0.5. Nil positions are preserved.
// Pure and idempotent for identical input.
func Normalize(values []*float64) []*float64 {
	var lo, hi float64
	seen := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if !seen || *v < lo {
			lo = *v
		}
		if !seen || *v > hi {
			hi = *v
		}
		seen = true
	}

	out := make([]*float64, len(values))
	span := hi - lo
	for i, v := range values {
		if v == nil {
			continue
		}
		scaled := 0.5
		if span != 0 {
			scaled = (*v - lo) / span
		}
		inverted := 1 - scaled
		out[i] = &inverted
	}
	return out
}

// Reshape re-partitions a flat sequence back into the jagged shape of
// the template grid. Missing tail values come back nil so a short input
// never panics.
func Reshape(flat []*float64, template ActivityData) ActivityData {
	out := make(ActivityData, len(template))
	i := 0
	for r, row := range template {
		out[r] = make([]*float64, len(row))
		for c := range row {
			if i < len(flat) {
				out[r][c] = flat[i]
			}
			i++
		}
	}
	return out
}
