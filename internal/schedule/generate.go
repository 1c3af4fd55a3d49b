package schedule

import (
	"math/rand"

	"github.com/Onimuxha/wexly/internal/model"
)

// Generate produces a randomized day plan from the activity catalog.
// Completed activities are skipped, the rest are shuffled uniformly and
// chained back to back from a random anchor hour: 9 or 10 on a day off,
// 18 or 19 on a work day. Each activity's nominal duration is perturbed
// by [-10, +9] minutes with a floor of 15.
//
// The randomness source is injected so callers can fix the seed in tests.
func Generate(catalog []model.Activity, isDayOff bool, rng *rand.Rand) []model.ScheduledActivity {
	pending := make([]model.Activity, 0, len(catalog))
	for _, a := range catalog {
		if !a.Completed {
			pending = append(pending, a)
		}
	}
	rng.Shuffle(len(pending), func(i, j int) {
		pending[i], pending[j] = pending[j], pending[i]
	})

	hour := 18 + rng.Intn(2)
	if isDayOff {
		hour = 9 + rng.Intn(2)
	}
	minute := 0

	out := make([]model.ScheduledActivity, 0, len(pending))
	for _, a := range pending {
		duration := a.Duration + rng.Intn(20) - 10
		if duration < 15 {
			duration = 15
		}
		a.Duration = duration

		start := FormatTime(hour, minute)
		hour, minute = AddMinutes(hour, minute, duration)

		out = append(out, model.ScheduledActivity{
			Activity:  a,
			StartTime: start,
			EndTime:   FormatTime(hour, minute),
		})
	}
	return out
}
