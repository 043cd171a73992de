package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lpm/internal/profile"
)

// ErrProfileNotFound is returned when a named profile is not in the library.
var ErrProfileNotFound = errors.New("profile not found")

// StoredProfile is a library entry header (the config itself is loaded
// separately).
type StoredProfile struct {
	Name      string
	GameName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaveProfile inserts or updates a named profile. The config is stored as
// its canonical JSON.
func (d *DB) SaveProfile(name string, cfg profile.GameConfig) error {
	data, err := cfg.EncodeJSON()
	if err != nil {
		return err
	}

	_, err = d.Exec(`
        INSERT INTO profiles (name, game_name, config, updated_at)
        VALUES (?, ?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(name) DO UPDATE SET
            game_name = excluded.game_name,
            config = excluded.config,
            updated_at = CURRENT_TIMESTAMP
    `, name, cfg.GameName, string(data))
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// GetProfile loads a named profile's config.
func (d *DB) GetProfile(name string) (profile.GameConfig, error) {
	var data string
	err := d.QueryRow(`SELECT config FROM profiles WHERE name = ?`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return profile.GameConfig{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err != nil {
		return profile.GameConfig{}, fmt.Errorf("getting profile: %w", err)
	}
	return profile.DecodeJSON([]byte(data))
}

// ListProfiles returns the library headers, most recently updated first.
func (d *DB) ListProfiles() ([]StoredProfile, error) {
	rows, err := d.Query(`
        SELECT name, game_name, created_at, updated_at
        FROM profiles
        ORDER BY updated_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []StoredProfile
	for rows.Next() {
		var p StoredProfile
		if err := rows.Scan(&p.Name, &p.GameName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a named profile from the library.
func (d *DB) DeleteProfile(name string) error {
	result, err := d.Exec(`DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return nil
}
