package db

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Onimuxha/wexly/internal/model"
)

type dayScheduleRow struct {
	Date       string          `db:"date"`
	IsDayOff   bool            `db:"is_day_off"`
	Activities json.RawMessage `db:"activities"`
}

func (r dayScheduleRow) toModel() (model.DaySchedule, error) {
	ds := model.DaySchedule{
		Date:       r.Date,
		IsDayOff:   r.IsDayOff,
		Activities: []model.ScheduledActivity{},
	}
	if len(r.Activities) > 0 {
		if err := json.Unmarshal(r.Activities, &ds.Activities); err != nil {
			return model.DaySchedule{}, err
		}
	}
	return ds, nil
}

// Returns nil, sql.ErrNoRows when the day has never been generated.
func (s *pgStore) GetDaySchedule(userID int, date string) (*model.DaySchedule, error) {
	var row dayScheduleRow
	const q = `
	SELECT date, is_day_off, activities
	  FROM day_schedules
	 WHERE user_id = $1 AND date = $2;`
	if err := s.db.Get(&row, q, userID, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Str("date", date).Msg("GetDaySchedule failed")
		return nil, err
	}
	ds, err := row.toModel()
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("GetDaySchedule decode failed")
		return nil, err
	}
	return &ds, nil
}

// UpsertDaySchedule replaces the stored day wholesale, keyed by
// (user, day key). The activities sequence is stored as jsonb.
func (s *pgStore) UpsertDaySchedule(userID int, ds model.DaySchedule) error {
	activities := ds.Activities
	if activities == nil {
		activities = []model.ScheduledActivity{}
	}
	payload, err := json.Marshal(activities)
	if err != nil {
		return err
	}

	const q = `
	INSERT INTO day_schedules (user_id, date, is_day_off, activities, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (user_id, date)
	DO UPDATE SET is_day_off = EXCLUDED.is_day_off,
	              activities = EXCLUDED.activities,
	              updated_at = now();`
	if _, err := s.db.Exec(q, userID, ds.Date, ds.IsDayOff, payload); err != nil {
		log.Error().Err(err).Str("date", ds.Date).Msg("UpsertDaySchedule failed")
		return err
	}
	return nil
}

func (s *pgStore) ListDaySchedules(userID int, from, to string) ([]model.DaySchedule, error) {
	var rows []dayScheduleRow
	const q = `
	SELECT date, is_day_off, activities
	  FROM day_schedules
	 WHERE user_id = $1 AND date >= $2 AND date <= $3
	 ORDER BY date;`
	if err := s.db.Select(&rows, q, userID, from, to); err != nil {
		log.Error().Err(err).Msg("ListDaySchedules failed")
		return nil, err
	}

	out := make([]model.DaySchedule, 0, len(rows))
	for _, r := range rows {
		ds, err := r.toModel()
		if err != nil {
			log.Error().Err(err).Str("date", r.Date).Msg("ListDaySchedules decode failed")
			return nil, err
		}
		out = append(out, ds)
	}
	return out, nil
}
