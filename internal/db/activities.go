package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Onimuxha/wexly/internal/model"
)

func (s *pgStore) ListActivities(userID int) ([]model.Activity, error) {
	var out []model.Activity
	const q = `
	SELECT id, name, name_kh, duration, completed, sort_order
	  FROM activities
	 WHERE user_id = $1
	 ORDER BY sort_order, id;`
	if err := s.db.Select(&out, q, userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("ListActivities failed")
		return nil, err
	}
	return out, nil
}

// ReplaceActivities swaps the whole catalog for a user in one transaction.
// The given slice order becomes the persisted sort order.
func (s *pgStore) ReplaceActivities(userID int, activities []model.Activity) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM activities WHERE user_id = $1;`, userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("ReplaceActivities delete failed")
		return err
	}

	const q = `
	INSERT INTO activities (id, user_id, name, name_kh, duration, completed, sort_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now());`
	for i, a := range activities {
		if _, err := tx.Exec(q, a.ID, userID, a.Name, a.NameKh, a.Duration, a.Completed, i); err != nil {
			log.Error().Err(err).Str("activity_id", a.ID).Msg("ReplaceActivities insert failed")
			return err
		}
	}
	return tx.Commit()
}

func (s *pgStore) CreateActivity(userID int, a model.Activity) (model.Activity, error) {
	var out model.Activity
	const q = `
	INSERT INTO activities (id, user_id, name, name_kh, duration, completed, sort_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6,
	        (SELECT COALESCE(MAX(sort_order) + 1, 0) FROM activities WHERE user_id = $2),
	        now(), now())
	RETURNING id, name, name_kh, duration, completed, sort_order;`
	if err := s.db.Get(&out, q, a.ID, userID, a.Name, a.NameKh, a.Duration, a.Completed); err != nil {
		log.Error().Err(err).Msg("CreateActivity failed")
		return model.Activity{}, err
	}
	return out, nil
}

func (s *pgStore) UpdateActivity(userID int, id string, name, nameKh *string, duration *int, completed *bool) (model.Activity, error) {
	var out model.Activity
	const q = `
	UPDATE activities
	   SET name = COALESCE($3, name),
	       name_kh = COALESCE($4, name_kh),
	       duration = COALESCE($5, duration),
	       completed = COALESCE($6, completed),
	       updated_at = now()
	 WHERE user_id = $1 AND id = $2
	RETURNING id, name, name_kh, duration, completed, sort_order;`
	if err := s.db.Get(&out, q, userID, id, name, nameKh, duration, completed); err != nil {
		log.Error().Err(err).Str("activity_id", id).Msg("UpdateActivity failed")
		return model.Activity{}, err
	}
	return out, nil
}

func (s *pgStore) DeleteActivity(userID int, id string) error {
	_, err := s.db.Exec(`DELETE FROM activities WHERE user_id = $1 AND id = $2;`, userID, id)
	if err != nil {
		log.Error().Err(err).Str("activity_id", id).Msg("DeleteActivity failed")
	}
	return err
}
