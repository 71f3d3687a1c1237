package domain

import (
	"fmt"
	"time"
)

const millisPerMinute = 60_000

// ElapsedMinutes returns the whole minutes between start and now, floor-
// rounded. All duration math works in milliseconds internally. Negative gaps
// clamp to 0.
func ElapsedMinutes(now, start time.Time) int {
	ms := now.Sub(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return int(ms / millisPerMinute)
}

// HoursBetween returns the fractional hours between two instants.
func HoursBetween(now, then time.Time) float64 {
	return now.Sub(then).Hours()
}

// SplitMinutes splits a total minute count into hours and leftover minutes.
func SplitMinutes(total int) (hours, minutes int) {
	return total / 60, total % 60
}

// FormatDuration renders whole minutes as "2h 5m".
func FormatDuration(totalMinutes int) string {
	h, m := SplitMinutes(totalMinutes)
	return fmt.Sprintf("%dh %dm", h, m)
}
