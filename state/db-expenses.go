package state

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

// DefaultFundingSource labels expenses paid from the cash box when no source
// is given.
const DefaultFundingSource = "Kas"

type Expense struct {
	ID            int    `db:"expense_id" json:"expense_id"`
	Date          string `db:"date" json:"date"`
	Category      string `db:"category" json:"category"`
	Amount        int64  `db:"amount" json:"amount"`
	Note          string `db:"note" json:"note"`
	FundingSource string `db:"funding_source" json:"funding_source"`
}

const selectExpense = `SELECT expense_id, date, category, amount, note, funding_source FROM expenses`

func ListExpenses(d *database.Database) ([]Expense, error) {
	expenses := []Expense{}
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Select(&expenses, selectExpense)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func GetExpenseByID(d *database.Database, id int) (*Expense, error) {
	var e Expense
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Get(&e, selectExpense+` WHERE expense_id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: expense %d", database.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %d: %w", id, err)
	}
	return &e, nil
}

func CreateExpense(d *database.Database, e Expense) error {
	if e.FundingSource == "" {
		e.FundingSource = DefaultFundingSource
	}
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(
			`INSERT INTO expenses (date, category, amount, note, funding_source)
			 VALUES ($1, $2, $3, $4, $5)`,
			e.Date, e.Category, e.Amount, e.Note, e.FundingSource)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func UpdateExpense(d *database.Database, id int, e Expense) error {
	if e.FundingSource == "" {
		e.FundingSource = DefaultFundingSource
	}
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(
			`UPDATE expenses SET date = $1, category = $2, amount = $3, note = $4, funding_source = $5
			 WHERE expense_id = $6`,
			e.Date, e.Category, e.Amount, e.Note, e.FundingSource, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", id, err)
	}
	return nil
}

func DeleteExpense(d *database.Database, id int) error {
	err := d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(`DELETE FROM expenses WHERE expense_id = $1`, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", id, err)
	}
	return nil
}
