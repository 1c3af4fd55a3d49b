package schedule

import "time"

// WeekDates returns the Monday-anchored 7-day window containing today,
// Monday first. Sunday counts as the last day of the previous window.
func WeekDates(today time.Time) []time.Time {
	offset := 1 - int(today.Weekday())
	if today.Weekday() == time.Sunday {
		offset = -6
	}
	monday := today.AddDate(0, 0, offset)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// DayKey returns the canonical map key for a calendar date.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// IsToday reports whether date and now fall on the same calendar day.
func IsToday(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
