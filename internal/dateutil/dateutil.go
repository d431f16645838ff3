package dateutil

import "time"

// AddMonths advances t by the given number of calendar months. When the
// original day does not exist in the target month, the day is clamped
// to the last valid day (Jan 31 + 1 month = Feb 28, or Feb 29 on leap
// years), so a bill due on the 31st never slides into the next month.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())

	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}

	h, min, sec := t.Clock()

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, h, min, sec, t.Nanosecond(), t.Location())
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// BeforeDay reports whether a falls on an earlier calendar day than b,
// ignoring time of day.
func BeforeDay(a, b time.Time) bool {
	return Truncate(a).Before(Truncate(b))
}

// DaysUntil returns the number of calendar days from today until
// target. Negative when target is in the past. Dates are compared in
// UTC so DST transitions never shorten a day below the 24h divisor.
func DaysUntil(today, target time.Time) int {
	diff := utcDay(target).Sub(utcDay(today))
	return int(diff.Hours() / 24)
}

func utcDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
