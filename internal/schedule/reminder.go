package schedule

import "time"

// ReminderDelay returns the delay from now until startTime next occurs,
// in now's location. A start time at or before now rolls forward exactly
// one calendar day, so the result is always positive.
func ReminderDelay(startTime string, now time.Time) (time.Duration, error) {
	hour, minute, err := ParseTime(startTime)
	if err != nil {
		return 0, err
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now), nil
}
