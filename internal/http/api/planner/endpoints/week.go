package endpoints

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Onimuxha/wexly/internal/db"
	"github.com/Onimuxha/wexly/internal/http/api"
	"github.com/Onimuxha/wexly/internal/http/api/planner/packets"
	"github.com/Onimuxha/wexly/internal/model"
	"github.com/Onimuxha/wexly/internal/redis"
	"github.com/Onimuxha/wexly/internal/schedule"
)

// WeekController serves the week view and every day-level mutation. The
// clock and randomness source are injected so tests can pin both.
type WeekController struct {
	store    db.Store
	now      func() time.Time
	cacheTTL time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewWeekController(store db.Store, rng *rand.Rand, now func() time.Time, cacheTTL time.Duration) *WeekController {
	return &WeekController{store: store, rng: rng, now: now, cacheTTL: cacheTTL}
}

func WeekModule(store db.Store, rng *rand.Rand, now func() time.Time, cacheTTL time.Duration) api.Module {
	ctl := NewWeekController(store, rng, now, cacheTTL)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/week", ctl.getWeek)
		c.POST("/week/generate", ctl.generateWeek)

		c.POST("/days/:date/generate", ctl.generateDay)
		c.POST("/days/:date/day-off", ctl.toggleDayOff)
		c.POST("/days/:date/reorder", ctl.reorderActivities)
		c.PUT("/days/:date/start-time", ctl.setDayStartTime)
		c.PUT("/days/:date/activities/:id/time", ctl.setActivityTime)
		c.POST("/days/:date/activities/:id/toggle", ctl.toggleActivityDone)
	})
}

// generate guards the shared rand source; gin runs handlers concurrently.
func (w *WeekController) generate(catalog []model.Activity, isDayOff bool) []model.ScheduledActivity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return schedule.Generate(catalog, isDayOff, w.rng)
}

func weekCacheKey(userID int, mondayKey string) string {
	return fmt.Sprintf("week:%d:%s", userID, mondayKey)
}

// dropWeekCache invalidates the cached week view containing date.
func (w *WeekController) dropWeekCache(ctx *gin.Context, userID int, date time.Time) {
	week := schedule.WeekDates(date)
	redis.Del(ctx.Request.Context(), weekCacheKey(userID, schedule.DayKey(week[0])))
}

func parseDayParam(ctx *gin.Context) (time.Time, *api.APIError) {
	raw := ctx.Param("date")
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, expected YYYY-MM-DD"}
	}
	return date, nil
}

// buildWeek assembles the 7-day response for the window containing date.
func (w *WeekController) buildWeek(userID int, date time.Time) (packets.WeekResponse, error) {
	days := schedule.WeekDates(date)
	from := schedule.DayKey(days[0])
	to := schedule.DayKey(days[6])

	stored, err := w.store.ListDaySchedules(userID, from, to)
	if err != nil {
		return packets.WeekResponse{}, err
	}
	byDate := make(map[string]model.DaySchedule, len(stored))
	for _, ds := range stored {
		byDate[ds.Date] = ds
	}

	response := packets.WeekResponse{WeekStart: from, WeekEnd: to, Days: make([]packets.DayResponse, 0, 7)}
	for i, day := range days {
		key := schedule.DayKey(day)
		dr := packets.DayResponse{
			Date:    key,
			Label:   model.DaysOfWeek[i],
			IsToday: schedule.IsToday(day, w.now()),
		}
		if ds, ok := byDate[key]; ok {
			stored := ds
			dr.Schedule = &stored
		}
		response.Days = append(response.Days, dr)
	}
	return response, nil
}

// GET /week?date=YYYY-MM-DD
func (w *WeekController) getWeek(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var query packets.WeekQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	anchor := w.now()
	if query.Date != "" {
		parsed, err := time.Parse("2006-01-02", query.Date)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, expected YYYY-MM-DD"}
		}
		anchor = parsed
	}

	monday := schedule.WeekDates(anchor)[0]
	cacheKey := weekCacheKey(user.ID, schedule.DayKey(monday))
	if cached, ok := redis.Get(ctx.Request.Context(), cacheKey); ok {
		var response packets.WeekResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return response, nil
		}
		log.Warn().Str("key", cacheKey).Msg("dropping unreadable week cache entry")
		redis.Del(ctx.Request.Context(), cacheKey)
	}

	response, err := w.buildWeek(user.ID, anchor)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load week"}
	}

	if payload, err := json.Marshal(response); err == nil {
		redis.Set(ctx.Request.Context(), cacheKey, payload, w.cacheTTL)
	}
	return response, nil
}

// POST /week/generate — regenerate all 7 days, preserving each day's
// day-off flag. Days are replaced wholesale.
func (w *WeekController) generateWeek(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	catalog, err := w.store.ListActivities(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load activities"}
	}

	days := schedule.WeekDates(w.now())
	for _, day := range days {
		key := schedule.DayKey(day)

		isDayOff := false
		if existing, err := w.store.GetDaySchedule(user.ID, key); err == nil {
			isDayOff = existing.IsDayOff
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load day"}
		}

		ds := model.DaySchedule{
			Date:       key,
			IsDayOff:   isDayOff,
			Activities: w.generate(catalog, isDayOff),
		}
		if err := w.store.UpsertDaySchedule(user.ID, ds); err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to save day"}
		}
	}

	w.dropWeekCache(ctx, user.ID, days[0])

	response, err := w.buildWeek(user.ID, days[0])
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load week"}
	}
	return response, nil
}

// POST /days/:date/generate
func (w *WeekController) generateDay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	date, apiErr := parseDayParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	key := schedule.DayKey(date)

	catalog, err := w.store.ListActivities(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load activities"}
	}

	isDayOff := false
	if existing, err := w.store.GetDaySchedule(user.ID, key); err == nil {
		isDayOff = existing.IsDayOff
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load day"}
	}

	ds := model.DaySchedule{Date: key, IsDayOff: isDayOff, Activities: w.generate(catalog, isDayOff)}
	if err := w.store.UpsertDaySchedule(user.ID, ds); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to save day"}
	}

	w.dropWeekCache(ctx, user.ID, date)
	return ds, nil
}

// POST /days/:date/day-off — flip the flag and regenerate the day with the
// matching anchor range.
func (w *WeekController) toggleDayOff(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	date, apiErr := parseDayParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	key := schedule.DayKey(date)

	catalog, err := w.store.ListActivities(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load activities"}
	}

	isDayOff := true
	if existing, err := w.store.GetDaySchedule(user.ID, key); err == nil {
		isDayOff = !existing.IsDayOff
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load day"}
	}

	ds := model.DaySchedule{Date: key, IsDayOff: isDayOff, Activities: w.generate(catalog, isDayOff)}
	if err := w.store.UpsertDaySchedule(user.ID, ds); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to save day"}
	}

	w.dropWeekCache(ctx, user.ID, date)
	return ds, nil
}

func (w *WeekController) loadDay(userID int, key string) (*model.DaySchedule, *api.APIError) {
	ds, err := w.store.GetDaySchedule(userID, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "day has not been generated"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load day"}
	}
	return ds, nil
}

// POST /days/:date/reorder — apply the given order, then re-chain times
// from the day's existing first start time.
func (w *WeekController) reorderActivities(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	date, apiErr := parseDayParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	key := schedule.DayKey(date)

	var request packets.ReorderActivitiesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	ds, apiErr := w.loadDay(user.ID, key)
	if apiErr != nil {
		return nil, apiErr
	}
	if len(ds.Activities) == 0 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "day has no activities"}
	}
	if len(request.ActivityIDs) != len(ds.Activities) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "activity_ids must list every scheduled activity exactly once"}
	}

	byID := make(map[string]model.ScheduledActivity, len(ds.Activities))
	for _, sa := range ds.Activities {
		byID[sa.ID] = sa
	}

	reordered := make([]model.ScheduledActivity, 0, len(ds.Activities))
	for _, id := range request.ActivityIDs {
		sa, ok := byID[id]
		if !ok {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown activity id: " + id}
		}
		delete(byID, id)
		reordered = append(reordered, sa)
	}

	anchor := ds.Activities[0].StartTime
	recalculated, err := schedule.Recalculate(reordered, anchor)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to recalculate times"}
	}

	ds.Activities = recalculated
	if err := w.store.UpsertDaySchedule(user.ID, *ds); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to save day"}
	}

	w.dropWeekCache(ctx, user.ID, date)
	return ds, nil
}

// PUT /days/:date/start-time — re-anchor the whole day.
func (w *WeekController) setDayStartTime(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	date, apiErr := parseDayParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	key := schedule.DayKey(date)

	var request packets.SetStartTimeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	ds, apiErr := w.loadDay(user.ID, key)
	if apiErr != nil {
		return nil, apiErr
	}

	recalculated, err := schedule.Recalculate(ds.Activities, request.StartTime)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidTimeFormat) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid start_time"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to recalculate times"}
	}

	ds.Activities = recalculated
	if err := w.store.UpsertDaySchedule(user.ID, *ds); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to save day"}
	}

	w.dropWeekCache(ctx, user.ID, date)
	return ds, nil
}

// PUT /days/:date/activities/:id/time — edit one activity's start time;
// earlier activities keep their slots, the edited one and everything after
// it are re-chained.
func (w *WeekController) setActivityTime(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	date, apiErr := parseDayParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	key := schedule.DayKey(date)
	activityID := ctx.Param("id")

	var request packets.SetStartTimeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	ds, apiErr := w.loadDay(user.ID, key)
	if apiErr != nil {
		return nil, apiErr
	}

	index := -1
	for i, sa := range ds.Activities {
		if sa.ID == activityID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "activity not scheduled on this day"}
	}

	recalculated, err := schedule.RecalculateFrom(ds.Activities, index, request.StartTime)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidTimeFormat) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid start_time"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to recalculate times"}
	}

	ds.Activities = recalculated
	if err := w.store.UpsertDaySchedule(user.ID, *ds); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to save day"}
	}

	w.dropWeekCache(ctx, user.ID, date)
	return ds, nil
}

// POST /days/:date/activities/:id/toggle — completion flip, times stay.
func (w *WeekController) toggleActivityDone(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	date, apiErr := parseDayParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	key := schedule.DayKey(date)
	activityID := ctx.Param("id")

	ds, apiErr := w.loadDay(user.ID, key)
	if apiErr != nil {
		return nil, apiErr
	}

	found := false
	for i := range ds.Activities {
		if ds.Activities[i].ID == activityID {
			ds.Activities[i].Completed = !ds.Activities[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "activity not scheduled on this day"}
	}

	if err := w.store.UpsertDaySchedule(user.ID, *ds); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to save day"}
	}

	w.dropWeekCache(ctx, user.ID, date)
	return ds, nil
}
