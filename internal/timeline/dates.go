package timeline

import "time"

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of calendar days from a to b. Each time is
// read as the calendar date of its own location, so a local "now" compares
// against UTC-midnight dates by the day the user sees. The result is
// negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int((dayStart(b).Unix() - dayStart(a).Unix()) / secondsPerDay)
}

// dayStart maps t to midnight UTC of its calendar date in its own location
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns t moved by n calendar days
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
