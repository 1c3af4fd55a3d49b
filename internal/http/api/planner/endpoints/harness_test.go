package endpoints

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Onimuxha/wexly/internal/db"
	"github.com/Onimuxha/wexly/internal/http/api"
	"github.com/Onimuxha/wexly/internal/model"
	"github.com/Onimuxha/wexly/internal/reminder"
)

// memStore is an in-memory db.Store so handler tests run without postgres.
type memStore struct {
	users      map[int]*model.User
	activities map[int][]model.Activity
	days       map[int]map[string]model.DaySchedule
	settings   map[int]map[string]string
	nextUserID int
}

var _ db.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[int]*model.User),
		activities: make(map[int][]model.Activity),
		days:       make(map[int]map[string]model.DaySchedule),
		settings:   make(map[int]map[string]string),
		nextUserID: 1,
	}
}

func (m *memStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	id := m.nextUserID
	m.nextUserID++
	now := time.Now()
	m.users[id] = &model.User{
		ID:             id,
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return id, nil
}

func (m *memStore) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) GetUserByID(id int) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (m *memStore) UpdateUserProfile(id int, email string, name *string) error {
	u, ok := m.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.Email = email
	u.Name = name
	u.UpdatedAt = time.Now()
	return nil
}

func (m *memStore) ListActivities(userID int) ([]model.Activity, error) {
	list := append([]model.Activity(nil), m.activities[userID]...)
	sort.SliceStable(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	return list, nil
}

func (m *memStore) ReplaceActivities(userID int, activities []model.Activity) error {
	m.activities[userID] = append([]model.Activity(nil), activities...)
	return nil
}

func (m *memStore) CreateActivity(userID int, a model.Activity) (model.Activity, error) {
	a.SortOrder = len(m.activities[userID])
	m.activities[userID] = append(m.activities[userID], a)
	return a, nil
}

func (m *memStore) UpdateActivity(userID int, id string, name, nameKh *string, duration *int, completed *bool) (model.Activity, error) {
	list := m.activities[userID]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if name != nil {
			list[i].Name = *name
		}
		if nameKh != nil {
			list[i].NameKh = *nameKh
		}
		if duration != nil {
			list[i].Duration = *duration
		}
		if completed != nil {
			list[i].Completed = *completed
		}
		return list[i], nil
	}
	return model.Activity{}, sql.ErrNoRows
}

func (m *memStore) DeleteActivity(userID int, id string) error {
	list := m.activities[userID]
	for i := range list {
		if list[i].ID == id {
			m.activities[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memStore) GetDaySchedule(userID int, date string) (*model.DaySchedule, error) {
	ds, ok := m.days[userID][date]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := ds
	copied.Activities = append([]model.ScheduledActivity(nil), ds.Activities...)
	return &copied, nil
}

func (m *memStore) UpsertDaySchedule(userID int, ds model.DaySchedule) error {
	if m.days[userID] == nil {
		m.days[userID] = make(map[string]model.DaySchedule)
	}
	ds.Activities = append([]model.ScheduledActivity(nil), ds.Activities...)
	m.days[userID][ds.Date] = ds
	return nil
}

func (m *memStore) ListDaySchedules(userID int, from, to string) ([]model.DaySchedule, error) {
	var out []model.DaySchedule
	for date, ds := range m.days[userID] {
		if date >= from && date <= to {
			out = append(out, ds)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *memStore) GetSetting(userID int, key string) (string, error) {
	value, ok := m.settings[userID][key]
	if !ok {
		return "", sql.ErrNoRows
	}
	return value, nil
}

func (m *memStore) SetSetting(userID int, key, value string) error {
	if m.settings[userID] == nil {
		m.settings[userID] = make(map[string]string)
	}
	m.settings[userID][key] = value
	return nil
}

// testClock is a Wednesday at noon, so the surrounding week runs
// 2026-03-02 (Monday) through 2026-03-08 (Sunday).
var testClock = func() time.Time {
	return time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)
}

const testUserID = 7

func testUser() *model.User {
	name := "Test User"
	return &model.User{ID: testUserID, Email: "test@example.com", Name: &name}
}

type routerOptions struct {
	scheduler *reminder.Scheduler
	now       func() time.Time
	seed      int64
}

// newTestRouter mounts every planner module with the user pre-injected,
// skipping the JWT round trip.
func newTestRouter(t *testing.T, store db.Store, opts routerOptions) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := opts.now
	if now == nil {
		now = testClock
	}
	scheduler := opts.scheduler
	if scheduler == nil {
		scheduler = reminder.NewScheduler(reminder.LogDispatcher{})
		t.Cleanup(scheduler.CancelAll)
	}
	rng := rand.New(rand.NewSource(opts.seed))

	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/planner",
		Middleware: []gin.HandlerFunc{
			func(c *gin.Context) { c.Set("currentUser", testUser()) },
		},
	},
		ActivityModule(store),
		WeekModule(store, rng, now, time.Minute),
		ReminderModule(store, scheduler, now),
		SettingsModule(store),
	)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
