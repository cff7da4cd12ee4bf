package state

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

// Vehicle availability. Status is a cache of "is any active rental
// outstanding", maintained by the rental store on every rental mutation; it
// is not a field callers set directly.
const (
	VehicleAvailable = "available"
	VehicleRented    = "rented"
)

type Vehicle struct {
	ID        int    `db:"vehicle_id" json:"vehicle_id"`
	Name      string `db:"name" json:"name"`
	Plate     string `db:"plate" json:"plate"`
	Category  string `db:"category" json:"category"`
	ModelYear string `db:"model_year" json:"model_year"`
	DailyRate int    `db:"daily_rate" json:"daily_rate"`
	Photo     string `db:"photo" json:"photo"`
	Status    string `db:"status" json:"status"`
}

const selectVehicle = `SELECT vehicle_id, name, plate, category, model_year, daily_rate, photo, status FROM vehicles`

func ListVehicles(d *database.Database) ([]Vehicle, error) {
	vehicles := []Vehicle{}
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Select(&vehicles, selectVehicle)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func GetVehicleByID(d *database.Database, id int) (*Vehicle, error) {
	var v Vehicle
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Get(&v, selectVehicle+` WHERE vehicle_id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: vehicle %d", database.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle %d: %w", id, err)
	}
	return &v, nil
}

// CreateVehicle inserts a new vehicle. New vehicles always start available.
func CreateVehicle(d *database.Database, v Vehicle) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(
			`INSERT INTO vehicles (name, plate, category, model_year, daily_rate, photo, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			v.Name, v.Plate, v.Category, v.ModelYear, v.DailyRate, v.Photo, VehicleAvailable)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// UpdateVehicle rewrites the vehicle's descriptive fields. Status is left
// alone; only the rental store touches it.
func UpdateVehicle(d *database.Database, id int, v Vehicle) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		res, err := db.Exec(
			`UPDATE vehicles SET name = $1, plate = $2, category = $3, model_year = $4, daily_rate = $5, photo = $6
			 WHERE vehicle_id = $7`,
			v.Name, v.Plate, v.Category, v.ModelYear, v.DailyRate, v.Photo, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: vehicle %d", database.ErrNotFound, id)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update vehicle %d: %w", id, err)
	}
	return nil
}

func DeleteVehicle(d *database.Database, id int) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(`DELETE FROM vehicles WHERE vehicle_id = $1`, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %d: %w", id, err)
	}
	return nil
}
