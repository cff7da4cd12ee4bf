package state

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

type Customer struct {
	ID         int    `db:"customer_id" json:"customer_id"`
	Name       string `db:"name" json:"name"`
	Phone      string `db:"phone" json:"phone"`
	NationalID string `db:"national_id" json:"national_id"`
	Address    string `db:"address" json:"address"`
}

const selectCustomer = `SELECT customer_id, name, phone, national_id, address FROM customers`

func ListCustomers(d *database.Database) ([]Customer, error) {
	customers := []Customer{}
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Select(&customers, selectCustomer)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func GetCustomerByID(d *database.Database, id int) (*Customer, error) {
	var c Customer
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Get(&c, selectCustomer+` WHERE customer_id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: customer %d", database.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	return &c, nil
}

func CreateCustomer(d *database.Database, c Customer) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(
			`INSERT INTO customers (name, phone, national_id, address) VALUES ($1, $2, $3, $4)`,
			c.Name, c.Phone, c.NationalID, c.Address)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func UpdateCustomer(d *database.Database, id int, c Customer) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(
			`UPDATE customers SET name = $1, phone = $2, national_id = $3, address = $4 WHERE customer_id = $5`,
			c.Name, c.Phone, c.NationalID, c.Address, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return nil
}

func DeleteCustomer(d *database.Database, id int) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(`DELETE FROM customers WHERE customer_id = $1`, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	return nil
}
