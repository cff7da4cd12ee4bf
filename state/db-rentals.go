package state

// Rental lifecycle. A vehicle's availability status must always reflect
// whether a non-returned rental references it, so every rental mutation also
// repairs the status of the vehicle(s) involved. Each mutation runs inside a
// single database transaction: either the rental change and the status
// repair both land, or neither does.

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

const (
	RentalActive   = "active"
	RentalReturned = "kembali"
)

type Rental struct {
	ID                int     `db:"rental_id" json:"rental_id"`
	VehicleID         int     `db:"vehicle_id" json:"vehicle_id"`
	CustomerID        int     `db:"customer_id" json:"customer_id"`
	StartDate         string  `db:"start_date" json:"start_date"`
	PlannedReturnDate string  `db:"planned_return_date" json:"planned_return_date"`
	ActualReturnDate  *string `db:"actual_return_date" json:"actual_return_date"`
	DaysLate          *int    `db:"days_late" json:"days_late"`
	TotalDue          *int64  `db:"total_due" json:"total_due"`
	Status            string  `db:"status" json:"status"`
	Penalty           *int64  `db:"penalty" json:"penalty"`
	Discount          int64   `db:"discount" json:"discount"`
	ReturnPhoto       string  `db:"return_photo" json:"return_photo"`
	Note              string  `db:"note" json:"note"`
}

const selectRental = `SELECT rental_id, vehicle_id, customer_id, start_date, planned_return_date,
	actual_return_date, days_late, total_due, status, penalty, discount, return_photo, note
	FROM rentals`

func ListRentals(d *database.Database) ([]Rental, error) {
	rentals := []Rental{}
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Select(&rentals, selectRental)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return rentals, nil
}

func GetRentalByID(d *database.Database, id int) (*Rental, error) {
	var r Rental
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Get(&r, selectRental+` WHERE rental_id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: rental %d", database.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rental %d: %w", id, err)
	}
	return &r, nil
}

// CreateRental inserts the rental in the active state and marks its vehicle
// rented.
func CreateRental(d *database.Database, r Rental) error {
	return d.WithTx(func(tx *sqlx.Tx) error {
		_, err := tx.Exec(
			`INSERT INTO rentals (vehicle_id, customer_id, start_date, planned_return_date,
				actual_return_date, days_late, total_due, status, penalty, discount, return_photo, note)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			r.VehicleID, r.CustomerID, r.StartDate, r.PlannedReturnDate,
			r.ActualReturnDate, r.DaysLate, r.TotalDue, RentalActive,
			r.Penalty, r.Discount, r.ReturnPhoto, r.Note)
		if err != nil {
			return fmt.Errorf("failed to insert rental: %w", err)
		}
		if err := setVehicleStatus(tx, r.VehicleID, VehicleRented); err != nil {
			return err
		}
		return nil
	})
}

// UpdateRental applies newData to the rental and repairs vehicle statuses.
// When the vehicle reference changes, the old vehicle is freed
// unconditionally — even if another active rental still holds it. The new
// vehicle becomes available when the rental is returned, rented otherwise.
func UpdateRental(d *database.Database, id int, r Rental) error {
	return d.WithTx(func(tx *sqlx.Tx) error {
		var current Rental
		if err := tx.Get(&current, selectRental+` WHERE rental_id = $1`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: rental %d", database.ErrNotFound, id)
			}
			return fmt.Errorf("failed to read rental %d: %w", id, err)
		}

		res, err := tx.Exec(
			`UPDATE rentals SET vehicle_id = $1, customer_id = $2, start_date = $3,
				planned_return_date = $4, actual_return_date = $5, days_late = $6,
				total_due = $7, status = $8, penalty = $9, discount = $10,
				return_photo = $11, note = $12
			 WHERE rental_id = $13`,
			r.VehicleID, r.CustomerID, r.StartDate, r.PlannedReturnDate,
			r.ActualReturnDate, r.DaysLate, r.TotalDue, r.Status,
			r.Penalty, r.Discount, r.ReturnPhoto, r.Note, id)
		if err != nil {
			return fmt.Errorf("failed to update rental %d: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update rental %d: %w", id, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: rental %d", database.ErrNotFound, id)
		}

		if current.VehicleID != r.VehicleID {
			if err := setVehicleStatus(tx, current.VehicleID, VehicleAvailable); err != nil {
				return err
			}
		}
		newStatus := VehicleRented
		if r.Status == RentalReturned {
			newStatus = VehicleAvailable
		}
		return setVehicleStatus(tx, r.VehicleID, newStatus)
	})
}

// DeleteRental frees the rental's vehicle and removes the row. A rental that
// cannot be read back (already gone) is deleted without a status repair.
func DeleteRental(d *database.Database, id int) error {
	return d.WithTx(func(tx *sqlx.Tx) error {
		var current Rental
		if err := tx.Get(&current, selectRental+` WHERE rental_id = $1`, id); err != nil {
			log.Printf("Skipping vehicle status repair for rental %d: %v", id, err)
		} else if err := setVehicleStatus(tx, current.VehicleID, VehicleAvailable); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM rentals WHERE rental_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete rental %d: %w", id, err)
		}
		return nil
	})
}

func setVehicleStatus(tx *sqlx.Tx, vehicleID int, status string) error {
	if _, err := tx.Exec(`UPDATE vehicles SET status = $1 WHERE vehicle_id = $2`, status, vehicleID); err != nil {
		return fmt.Errorf("failed to set vehicle %d status to %s: %w", vehicleID, status, err)
	}
	return nil
}
