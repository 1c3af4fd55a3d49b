package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned by ParseTime when the input matches
// neither the 24-hour wire form nor the 12-hour display form.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// FormatTime renders an hour/minute pair in the 12-hour display form,
// e.g. (0, 5) -> "12:05 AM", (13, 30) -> "1:30 PM". Minutes are always
// two digits; the hour carries no leading zero.
func FormatTime(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// ParseTime accepts either the 24-hour wire form "HH:MM" or the 12-hour
// display form "H:MM AM/PM" (period marker case-insensitive) and returns
// the 24-hour clock components. Hour 12 AM maps to 0, 12 PM stays 12.
func ParseTime(s string) (int, int, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))

	var period string
	if strings.HasSuffix(trimmed, "AM") || strings.HasSuffix(trimmed, "PM") {
		period = trimmed[len(trimmed)-2:]
		trimmed = strings.TrimSpace(trimmed[:len(trimmed)-2])
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	switch period {
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}
	return hour, minute, nil
}

// AddMinutes advances a clock by delta minutes, carrying minutes into the
// hour counter. The hour is deliberately not wrapped at 23: a chain that
// runs past midnight surfaces hours >= 24 and the caller owns any
// day-boundary policy.
func AddMinutes(hour, minute, delta int) (int, int) {
	minute += delta
	for minute >= 60 {
		minute -= 60
		hour++
	}
	return hour, minute
}
