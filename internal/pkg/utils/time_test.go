package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayRange(t *testing.T) {
	location, err := time.LoadLocation("Asia/Kolkata")
	assert.NoError(t, err)

	t.Run("Bounds The Containing Day", func(t *testing.T) {
		moment := time.Date(2026, time.September, 1, 14, 35, 12, 0, location)

		start, end := DayRange(moment)

		assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, location), start)
		assert.Equal(t, time.Date(2026, time.September, 1, 23, 59, 59, 999999999, location), end)
	})

	t.Run("Keeps The Input Location", func(t *testing.T) {
		moment := time.Date(2026, time.September, 1, 0, 0, 0, 0, location)

		start, end := DayRange(moment)

		assert.Equal(t, location.String(), start.Location().String())
		assert.Equal(t, location.String(), end.Location().String())
	})
}

func TestTrailingMonths(t *testing.T) {
	t.Run("Six Months Ascending Ending With Current", func(t *testing.T) {
		now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)

		months := TrailingMonths(now, 6)

		assert.Len(t, months, 6)
		assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), months[0])
		assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), months[5])
		for i := 1; i < len(months); i++ {
			assert.True(t, months[i].After(months[i-1]), "months should be ascending")
		}
	})

	t.Run("Crosses Year Boundary", func(t *testing.T) {
		now := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

		months := TrailingMonths(now, 6)

		assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), months[0])
		assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), months[5])
	})
}
