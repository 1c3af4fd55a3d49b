// exposes a Store interface that is passed to API calls
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/Onimuxha/wexly/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// activity catalog
	ListActivities(userID int) ([]model.Activity, error)
	ReplaceActivities(userID int, activities []model.Activity) error
	CreateActivity(userID int, a model.Activity) (model.Activity, error)
	UpdateActivity(userID int, id string, name, nameKh *string, duration *int, completed *bool) (model.Activity, error)
	DeleteActivity(userID int, id string) error

	// day schedules
	GetDaySchedule(userID int, date string) (*model.DaySchedule, error)
	UpsertDaySchedule(userID int, ds model.DaySchedule) error
	ListDaySchedules(userID int, from, to string) ([]model.DaySchedule, error)

	// per-user settings
	GetSetting(userID int, key string) (string, error)
	SetSetting(userID int, key, value string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	return &pgStore{db: database}
}
