package heatmap

import (
	"time"

	"tempus/chrono"
)

// Totals is the sparse pre-normalization sample map, kept alongside the
// normalized grid for tooltip and summary queries. It is rebuilt
// wholesale whenever new data is processed.
type Totals map[chrono.Date]float64

// SumWeek totals the seven days starting at the given date.
func (t Totals) SumWeek(start chrono.Date) float64 {
	var total float64
	day := start
	for i := 0; i < 7; i++ {
		total += t[day]
		next, ok := day.AddDays(1)
		if !ok {
			break
		}
		day = next
	}
	return total
}

// SumMonth totals every day of the month containing the given date.
func (t Totals) SumMonth(first chrono.Date) float64 {
	var total float64
	days := chrono.DaysInMonth(first.Year, first.Month)
	day, ok := first.Replace(1)
	if !ok {
		return 0
	}
	for i := 0; i < days; i++ {
		total += t[day]
		next, ok := day.AddDays(1)
		if !ok {
			break
		}
		day = next
	}
	return total
}

// EmptyYear builds the week/day scaffold for a display year: one row
// per ISO-aligned week, seven entries each, nil where the slot falls in
// an adjacent year. Activity feeds fill this shape in before handing it
// to ProcessData.
func EmptyYear(year int) [][]*chrono.Date {
	if year < chrono.MinYear || year > chrono.MaxYear {
		return nil
	}
	jan1, _ := chrono.NewDate(year, time.January, 1)
	// Rewind to the Monday on or before January 1st.
	lead := int(jan1.Weekday()+6) % 7
	day, ok := jan1.AddDays(-lead)
	if !ok {
		day = jan1
	}

	var weeks [][]*chrono.Date
	for day.Year <= year {
		week := make([]*chrono.Date, 7)
		done := false
		for i := 0; i < 7; i++ {
			if day.Year == year {
				d := day
				week[i] = &d
			}
			next, ok := day.AddDays(1)
			if !ok {
				done = true
				break
			}
			day = next
		}
		weeks = append(weeks, week)
		if done || day.Year > year {
			break
		}
	}
	return weeks
}
