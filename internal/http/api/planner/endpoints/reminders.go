package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Onimuxha/wexly/internal/db"
	"github.com/Onimuxha/wexly/internal/http/api"
	"github.com/Onimuxha/wexly/internal/http/api/planner/packets"
	"github.com/Onimuxha/wexly/internal/model"
	"github.com/Onimuxha/wexly/internal/reminder"
	"github.com/Onimuxha/wexly/internal/schedule"
)

type ReminderController struct {
	store     db.Store
	scheduler *reminder.Scheduler
	now       func() time.Time
}

func NewReminderController(store db.Store, scheduler *reminder.Scheduler, now func() time.Time) *ReminderController {
	return &ReminderController{store: store, scheduler: scheduler, now: now}
}

func ReminderModule(store db.Store, scheduler *reminder.Scheduler, now func() time.Time) api.Module {
	ctl := NewReminderController(store, scheduler, now)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/reminders", ctl.listReminders)
		c.POST("/reminders", ctl.armReminder)
		c.DELETE("/reminders/:id", ctl.cancelReminder)
	})
}

// POST /reminders — arm a notification for a scheduled activity. The
// activity id doubles as the reminder id, so re-arming replaces the
// previous reminder for the same activity.
func (r *ReminderController) armReminder(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ArmReminderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := time.Parse("2006-01-02", request.Date); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, expected YYYY-MM-DD"}
	}

	ds, err := r.store.GetDaySchedule(user.ID, request.Date)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "day has not been generated"}
	}

	var target *model.ScheduledActivity
	for i := range ds.Activities {
		if ds.Activities[i].ID == request.ActivityID {
			target = &ds.Activities[i]
			break
		}
	}
	if target == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "activity not scheduled on this day"}
	}

	delay, err := schedule.ReminderDelay(target.StartTime, r.now())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "activity has no valid start time"}
	}

	fireAt := r.scheduler.Arm(target.ID, user.ID, delay, reminder.Notification{
		Title: "Activity Reminder",
		Body:  "Time to: " + target.Name,
	})

	return packets.ReminderResponse{
		ReminderID: target.ID,
		FireAt:     fireAt.Format(time.RFC3339),
		DelayMs:    delay.Milliseconds(),
	}, nil
}

// GET /reminders
func (r *ReminderController) listReminders(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return gin.H{"pending": r.scheduler.Pending()}, nil
}

// DELETE /reminders/:id
func (r *ReminderController) cancelReminder(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if !r.scheduler.Cancel(ctx.Param("id")) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no pending reminder"}
	}
	return gin.H{"message": "cancelled"}, nil
}
