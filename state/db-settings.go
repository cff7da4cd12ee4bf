package state

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

type Setting struct {
	ID          int    `db:"setting_id" json:"setting_id"`
	Key         string `db:"key" json:"key"`
	Value       string `db:"value" json:"value"`
	Description string `db:"description" json:"description"`
}

// GetSetting returns the stored value for key, or "" when the key has never
// been set. An absent key is not an error.
func GetSetting(d *database.Database, key string) (string, error) {
	var value string
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Get(&value, `SELECT value FROM settings WHERE key = $1`, key)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores value under key, overwriting any previous value.
func SetSetting(d *database.Database, key, value, description string) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(
			`INSERT INTO settings (key, value, description) VALUES ($1, $2, $3)
			 ON CONFLICT(key) DO UPDATE SET value = $2, description = $3`,
			key, value, description)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}
