package schedule

import (
	"fmt"

	"github.com/Onimuxha/wexly/internal/model"
)

// Recalculate re-chains start/end times over an existing day plan without
// touching its order or durations. The first activity starts at anchor
// (either time form); every activity after it starts where the previous
// one ends. An empty plan is returned as-is and the anchor is not parsed.
func Recalculate(items []model.ScheduledActivity, anchor string) ([]model.ScheduledActivity, error) {
	out := make([]model.ScheduledActivity, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}

	hour, minute, err := ParseTime(anchor)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		item.StartTime = FormatTime(hour, minute)
		hour, minute = AddMinutes(hour, minute, item.Duration)
		item.EndTime = FormatTime(hour, minute)
		out = append(out, item)
	}
	return out, nil
}

// RecalculateFrom handles a mid-list time edit: activities before index
// keep their times, the activity at index is re-anchored at anchor, and
// everything after it is re-chained.
func RecalculateFrom(items []model.ScheduledActivity, index int, anchor string) ([]model.ScheduledActivity, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("schedule index %d out of range [0,%d)", index, len(items))
	}

	tail, err := Recalculate(items[index:], anchor)
	if err != nil {
		return nil, err
	}

	out := make([]model.ScheduledActivity, 0, len(items))
	out = append(out, items[:index]...)
	out = append(out, tail...)
	return out, nil
}
