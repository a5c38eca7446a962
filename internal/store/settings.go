package store

import (
	"database/sql"
	"errors"
)

// Setting keys used by the application.
const (
	SettingActiveScheme = "active_scheme"
	SettingActivePreset = "active_preset"
)

// GetSetting retrieves a setting value by key. Returns ErrNotFound when the
// key has never been set.
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// SetSetting stores a setting value, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}
