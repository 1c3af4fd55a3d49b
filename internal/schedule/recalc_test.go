package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onimuxha/wexly/internal/model"
)

func scheduledFixture() []model.ScheduledActivity {
	return []model.ScheduledActivity{
		{Activity: model.Activity{ID: "a1", Name: "Exercise", Duration: 30}},
		{Activity: model.Activity{ID: "a2", Name: "Relax", Duration: 15}},
		{Activity: model.Activity{ID: "a3", Name: "Do Laundry", Duration: 45}},
	}
}

func TestRecalculateChainsFromAnchor(t *testing.T) {
	out, err := Recalculate(scheduledFixture(), "09:00")
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "9:00 AM", out[0].StartTime)
	assert.Equal(t, "9:30 AM", out[0].EndTime)
	assert.Equal(t, "9:30 AM", out[1].StartTime)
	assert.Equal(t, "9:45 AM", out[1].EndTime)
	assert.Equal(t, "9:45 AM", out[2].StartTime)
	assert.Equal(t, "10:30 AM", out[2].EndTime)

	for i, sa := range out {
		assert.Equal(t, scheduledFixture()[i].Duration, sa.Duration, "durations stay untouched")
		assert.Equal(t, scheduledFixture()[i].ID, sa.ID, "order stays untouched")
	}
}

func TestRecalculateAcceptsDisplayFormAnchor(t *testing.T) {
	out, err := Recalculate(scheduledFixture(), "9:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", out[0].StartTime)
	assert.Equal(t, "10:30 AM", out[2].EndTime)
}

// Re-anchoring a plan at its own first start time must not drift.
func TestRecalculateIsIdempotent(t *testing.T) {
	first, err := Recalculate(scheduledFixture(), "18:00")
	require.NoError(t, err)

	second, err := Recalculate(first, first[0].StartTime)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecalculateEmptyPlan(t *testing.T) {
	out, err := Recalculate(nil, "whatever")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRecalculateRejectsBadAnchor(t *testing.T) {
	_, err := Recalculate(scheduledFixture(), "soon")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestRecalculateDoesNotMutateInput(t *testing.T) {
	in := scheduledFixture()
	_, err := Recalculate(in, "09:00")
	require.NoError(t, err)
	assert.Equal(t, scheduledFixture(), in)
}

func TestRecalculateFromMidList(t *testing.T) {
	in, err := Recalculate(scheduledFixture(), "09:00")
	require.NoError(t, err)

	out, err := RecalculateFrom(in, 1, "14:00")
	require.NoError(t, err)
	require.Len(t, out, 3)

	// prefix untouched
	assert.Equal(t, "9:00 AM", out[0].StartTime)
	assert.Equal(t, "9:30 AM", out[0].EndTime)

	// suffix re-anchored
	assert.Equal(t, "2:00 PM", out[1].StartTime)
	assert.Equal(t, "2:15 PM", out[1].EndTime)
	assert.Equal(t, "2:15 PM", out[2].StartTime)
	assert.Equal(t, "3:00 PM", out[2].EndTime)
}

func TestRecalculateFromRejectsBadIndex(t *testing.T) {
	in := scheduledFixture()
	_, err := RecalculateFrom(in, -1, "09:00")
	assert.Error(t, err)
	_, err = RecalculateFrom(in, len(in), "09:00")
	assert.Error(t, err)
}
