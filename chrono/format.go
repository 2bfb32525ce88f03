package chrono

import (
	"fmt"
	"time"
)

// FormatSeconds renders a second total as HH:MM:SS, or HH:MM when
// withSeconds is false. Hour counts are not range limited so totals past
// a day still render.
func FormatSeconds(total int, withSeconds bool) string {
	neg := ""
	if total < 0 {
		neg = "-"
		total = -total
	}
	hours := total / 3600
	minutes := total % 3600 / 60
	if !withSeconds {
		return fmt.Sprintf("%s%02d:%02d", neg, hours, minutes)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", neg, hours, minutes, total%60)
}

// FormatDuration renders a duration as HH:MM:SS.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(int(d/time.Second), true)
}
