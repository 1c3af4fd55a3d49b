package endpoints

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onimuxha/wexly/internal/http/api/planner/packets"
	"github.com/Onimuxha/wexly/internal/reminder"
)

func TestArmReminder(t *testing.T) {
	store := newMemStore()
	seedDay(store, "2026-03-04", chainedDay("2026-03-04"))

	scheduler := reminder.NewScheduler(reminder.LogDispatcher{})
	t.Cleanup(scheduler.CancelAll)
	r := newTestRouter(t, store, routerOptions{scheduler: scheduler})

	w := doJSON(t, r, http.MethodPost, "/api/planner/reminders",
		packets.ArmReminderRequest{Date: "2026-03-04", ActivityID: "id-2"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[packets.ReminderResponse](t, w)
	assert.Equal(t, "id-2", resp.ReminderID, "reminder id is the activity id")

	// clock is noon, activity starts 6:30 PM, so the delay is 6.5 hours
	assert.Equal(t, (6*time.Hour + 30*time.Minute).Milliseconds(), resp.DelayMs)

	_, err := time.Parse(time.RFC3339, resp.FireAt)
	assert.NoError(t, err)

	assert.Contains(t, scheduler.Pending(), "id-2")
}

func TestArmReminder_PastStartRollsToTomorrow(t *testing.T) {
	store := newMemStore()
	seedDay(store, "2026-03-04", chainedDay("2026-03-04"))

	// it is already 11 PM; every start time has passed
	late := func() time.Time {
		return time.Date(2026, time.March, 4, 23, 0, 0, 0, time.UTC)
	}
	r := newTestRouter(t, store, routerOptions{now: late})

	w := doJSON(t, r, http.MethodPost, "/api/planner/reminders",
		packets.ArmReminderRequest{Date: "2026-03-04", ActivityID: "id-1"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[packets.ReminderResponse](t, w)
	// 6:00 PM tomorrow is 19 hours away
	assert.Equal(t, (19 * time.Hour).Milliseconds(), resp.DelayMs)
}

func TestArmReminder_Errors(t *testing.T) {
	store := newMemStore()
	seedDay(store, "2026-03-04", chainedDay("2026-03-04"))
	r := newTestRouter(t, store, routerOptions{})

	w := doJSON(t, r, http.MethodPost, "/api/planner/reminders",
		packets.ArmReminderRequest{Date: "04/03/2026", ActivityID: "id-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/planner/reminders",
		packets.ArmReminderRequest{Date: "2026-03-05", ActivityID: "id-1"})
	assert.Equal(t, http.StatusNotFound, w.Code, "day never generated")

	w = doJSON(t, r, http.MethodPost, "/api/planner/reminders",
		packets.ArmReminderRequest{Date: "2026-03-04", ActivityID: "id-99"})
	assert.Equal(t, http.StatusNotFound, w.Code, "activity not on this day")
}

func TestListAndCancelReminders(t *testing.T) {
	store := newMemStore()
	seedDay(store, "2026-03-04", chainedDay("2026-03-04"))

	scheduler := reminder.NewScheduler(reminder.LogDispatcher{})
	t.Cleanup(scheduler.CancelAll)
	r := newTestRouter(t, store, routerOptions{scheduler: scheduler})

	w := doJSON(t, r, http.MethodGet, "/api/planner/reminders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	empty := decodeBody[struct {
		Pending []string `json:"pending"`
	}](t, w)
	assert.Empty(t, empty.Pending)

	doJSON(t, r, http.MethodPost, "/api/planner/reminders",
		packets.ArmReminderRequest{Date: "2026-03-04", ActivityID: "id-1"})

	w = doJSON(t, r, http.MethodGet, "/api/planner/reminders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	armed := decodeBody[struct {
		Pending []string `json:"pending"`
	}](t, w)
	assert.Equal(t, []string{"id-1"}, armed.Pending)

	w = doJSON(t, r, http.MethodDelete, "/api/planner/reminders/id-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, scheduler.Pending())

	w = doJSON(t, r, http.MethodDelete, "/api/planner/reminders/id-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "cancelling twice finds nothing")
}
