package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tickworks/fuzzyclock/internal/model"
)

func (s *pgStore) CreateScreen(name string, location *string, timezone string, createdBy int) (model.Screen, error) {
	var screen model.Screen
	q := `
	INSERT INTO screens (name, location, timezone, paired, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, false, $4, now(), now())
	RETURNING id, device_id, name, location, timezone, paired, created_by, created_at, updated_at;`
	if err := s.db.Get(&screen, q, name, location, timezone, createdBy); err != nil {
		log.Error().Err(err).Msg("failed to create screen")
		return model.Screen{}, err
	}
	return screen, nil
}

func (s *pgStore) GetScreenByID(id int) (model.Screen, error) {
	var screen model.Screen
	err := s.db.Get(&screen, `
		SELECT id, device_id, name, location, timezone, paired, created_by, created_at, updated_at
		FROM screens
		WHERE id = $1
		`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to get screen by id")
	}
	return screen, err
}

func (s *pgStore) GetScreenByDeviceID(deviceID string) (model.Screen, error) {
	var screen model.Screen
	err := s.db.Get(&screen, `
		SELECT id, device_id, name, location, timezone, paired, created_by, created_at, updated_at
		FROM screens
		WHERE device_id = $1
		`, deviceID)
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to get screen by device id")
	}
	return screen, err
}

func (s *pgStore) ListScreens() ([]model.Screen, error) {
	var screens []model.Screen
	err := s.db.Select(&screens, `
		SELECT id, device_id, name, location, timezone, paired, created_by, created_at, updated_at
		FROM screens
		ORDER BY id
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list screens")
	}
	return screens, err
}

// ListScreenTimezones returns the distinct zones across all screens, so the
// ticker renders each zone's phrase once instead of once per screen.
func (s *pgStore) ListScreenTimezones() ([]string, error) {
	var zones []string
	err := s.db.Select(&zones, `
		SELECT DISTINCT timezone
		FROM screens
		ORDER BY timezone
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list screen timezones")
	}
	return zones, err
}

func (s *pgStore) UpdateScreen(id int, name, location, timezone *string) error {
	_, err := s.db.Exec(`
		UPDATE screens
		SET name = COALESCE($2, name),
		location = COALESCE($3, location),
		timezone = COALESCE($4, timezone),
		updated_at = now()
		WHERE id = $1
		`, id, name, location, timezone)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to update screen")
	}
	return err
}

func (s *pgStore) DeleteScreen(id int) error {
	_, err := s.db.Exec(`DELETE FROM screens WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to delete screen")
	}
	return err
}

func (s *pgStore) PairScreen(id int) error {
	_, err := s.db.Exec(`
		UPDATE screens
		SET paired = TRUE,
		updated_at = now()
		WHERE id = $1
		`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("failed to pair screen")
	}
	return err
}

func (s *pgStore) IsScreenPairedByDeviceID(deviceID string) (bool, error) {
	var isPaired bool
	err := s.db.Get(&isPaired, `
		SELECT paired
		FROM screens
		WHERE device_id = $1
		`, deviceID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return isPaired, err
}

func (s *pgStore) AssignDeviceIDToScreen(screenID int, deviceID string) error {
	_, err := s.db.Exec(`
		UPDATE screens
		SET device_id = $2,
		updated_at = now()
		WHERE id = $1
		`, screenID, deviceID)
	if err != nil {
		log.Error().Err(err).Int("screen_id", screenID).Msg("failed to assign device id to screen")
	}
	return err
}
