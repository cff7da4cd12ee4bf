package state

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

// PaymentReceipt records a payment against a rental. Purely additive; no
// side effects on other entities.
type PaymentReceipt struct {
	ID          int    `db:"receipt_id" json:"receipt_id"`
	RentalID    int    `db:"rental_id" json:"rental_id"`
	PaymentDate string `db:"payment_date" json:"payment_date"`
	Amount      int64  `db:"amount" json:"amount"`
	Method      string `db:"method" json:"method"`
	Photo       string `db:"photo" json:"photo"`
}

const selectReceipt = `SELECT receipt_id, rental_id, payment_date, amount, method, photo FROM payment_receipts`

func ListReceipts(d *database.Database) ([]PaymentReceipt, error) {
	receipts := []PaymentReceipt{}
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Select(&receipts, selectReceipt)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payment receipts: %w", err)
	}
	return receipts, nil
}

func GetReceiptByID(d *database.Database, id int) (*PaymentReceipt, error) {
	var p PaymentReceipt
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Get(&p, selectReceipt+` WHERE receipt_id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment receipt %d", database.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment receipt %d: %w", id, err)
	}
	return &p, nil
}

func CreateReceipt(d *database.Database, p PaymentReceipt) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(
			`INSERT INTO payment_receipts (rental_id, payment_date, amount, method, photo)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.RentalID, p.PaymentDate, p.Amount, p.Method, p.Photo)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create payment receipt: %w", err)
	}
	return nil
}

func UpdateReceipt(d *database.Database, id int, p PaymentReceipt) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(
			`UPDATE payment_receipts SET rental_id = $1, payment_date = $2, amount = $3, method = $4, photo = $5
			 WHERE receipt_id = $6`,
			p.RentalID, p.PaymentDate, p.Amount, p.Method, p.Photo, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update payment receipt %d: %w", id, err)
	}
	return nil
}

func DeleteReceipt(d *database.Database, id int) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(`DELETE FROM payment_receipts WHERE receipt_id = $1`, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete payment receipt %d: %w", id, err)
	}
	return nil
}
