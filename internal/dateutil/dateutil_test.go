package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcaldeira/tandem/internal/dateutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "PlainMonth",
			start:  date(2025, time.January, 10),
			months: 1,
			want:   date(2025, time.February, 10),
		},
		{
			name:   "ClampsToShortMonth",
			start:  date(2025, time.January, 31),
			months: 1,
			want:   date(2025, time.February, 28),
		},
		{
			name:   "LeapYearFebruary",
			start:  date(2024, time.January, 31),
			months: 1,
			want:   date(2024, time.February, 29),
		},
		{
			name:   "ClampDoesNotStick",
			start:  date(2025, time.January, 31),
			months: 2,
			want:   date(2025, time.March, 31),
		},
		{
			name:   "CrossesYearBoundary",
			start:  date(2025, time.November, 15),
			months: 3,
			want:   date(2026, time.February, 15),
		},
		{
			name:   "ZeroMonths",
			start:  date(2025, time.June, 30),
			months: 0,
			want:   date(2025, time.June, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateutil.AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddMonths_KeepsTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.January, 31, 14, 30, 45, 0, time.UTC)

	got := dateutil.AddMonths(start, 1)

	assert.Equal(t, time.Date(2025, time.February, 28, 14, 30, 45, 0, time.UTC), got)
}

func TestBeforeDay(t *testing.T) {
	morning := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.March, 10, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)

	assert.False(t, dateutil.BeforeDay(morning, evening), "same calendar day is not before")
	assert.True(t, dateutil.BeforeDay(evening, nextDay))
	assert.False(t, dateutil.BeforeDay(nextDay, morning))
}

func TestDaysUntil(t *testing.T) {
	today := date(2025, time.March, 10)

	assert.Equal(t, 0, dateutil.DaysUntil(today, today))
	assert.Equal(t, 5, dateutil.DaysUntil(today, date(2025, time.March, 15)))
	assert.Equal(t, -3, dateutil.DaysUntil(today, date(2025, time.March, 7)))

	// time of day on either side does not change the whole-day count
	lateToday := time.Date(2025, time.March, 10, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, dateutil.DaysUntil(lateToday, date(2025, time.March, 15)))
}

func TestDaysUntil_DaylightSaving(t *testing.T) {
	// New York springs forward on 2025-03-09; the 23-hour day must
	// still count as a full day.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	today := time.Date(2025, time.March, 8, 0, 0, 0, 0, loc)
	target := time.Date(2025, time.March, 10, 0, 0, 0, 0, loc)

	assert.Equal(t, 2, dateutil.DaysUntil(today, target))
}
