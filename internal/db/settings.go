package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
)

// Returns "", sql.ErrNoRows when the setting has never been written.
func (s *pgStore) GetSetting(userID int, key string) (string, error) {
	var value string
	const q = `
	SELECT setting_value
	  FROM user_settings
	 WHERE user_id = $1 AND setting_key = $2;`
	if err := s.db.Get(&value, q, userID, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sql.ErrNoRows
		}
		log.Error().Err(err).Str("key", key).Msg("GetSetting failed")
		return "", err
	}
	return value, nil
}

func (s *pgStore) SetSetting(userID int, key, value string) error {
	const q = `
	INSERT INTO user_settings (user_id, setting_key, setting_value, updated_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (user_id, setting_key)
	DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = now();`
	if _, err := s.db.Exec(q, userID, key, value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("SetSetting failed")
		return err
	}
	return nil
}
