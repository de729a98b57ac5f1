package utils

import "time"

// DayRange returns the inclusive bounds of the calendar day containing t,
// evaluated in t's location: [00:00:00.000000000, 23:59:59.999999999].
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// TrailingMonths returns the first instant of each of the n calendar months
// ending with the month containing now, chronologically ascending.
func TrailingMonths(now time.Time, n int) []time.Time {
	months := make([]time.Time, 0, n)
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := n - 1; i >= 0; i-- {
		months = append(months, current.AddDate(0, -i, 0))
	}
	return months
}
