package database

import (
	"fmt"
	"log"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS vehicles (
	vehicle_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	photo TEXT NOT NULL,
	plate TEXT NOT NULL,
	category TEXT NOT NULL,
	model_year TEXT NOT NULL,
	daily_rate INTEGER NOT NULL,
	status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
	customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	national_id TEXT NOT NULL,
	address TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS rentals (
	rental_id INTEGER PRIMARY KEY AUTOINCREMENT,
	vehicle_id INTEGER,
	customer_id INTEGER,
	start_date TEXT,
	planned_return_date TEXT,
	actual_return_date TEXT,
	days_late INTEGER,
	total_due INTEGER,
	status TEXT,
	penalty INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS payment_receipts (
	receipt_id INTEGER PRIMARY KEY AUTOINCREMENT,
	rental_id INTEGER,
	payment_date TEXT,
	amount INTEGER,
	method TEXT,
	photo TEXT
);

CREATE TABLE IF NOT EXISTS expenses (
	expense_id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT,
	category TEXT,
	amount INTEGER,
	note TEXT
);

CREATE TABLE IF NOT EXISTS settings (
	setting_id INTEGER PRIMARY KEY AUTOINCREMENT,
	key TEXT NOT NULL UNIQUE,
	value TEXT NOT NULL,
	description TEXT
);

CREATE TABLE IF NOT EXISTS users (
	user_id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'admin',
	created_at TEXT NOT NULL
);
`

// Additive column migrations, applied in order on every start. A migration
// whose column already exists fails and is skipped; nothing is ever dropped
// or renamed.
var columnMigrations = []string{
	`ALTER TABLE rentals ADD COLUMN return_photo TEXT DEFAULT ''`,
	`ALTER TABLE expenses ADD COLUMN funding_source TEXT DEFAULT 'Kas'`,
	`ALTER TABLE rentals ADD COLUMN note TEXT DEFAULT ''`,
	`ALTER TABLE rentals ADD COLUMN discount INTEGER DEFAULT 0`,
}

// InitSchema creates all tables and applies the column migrations. Safe to
// call on every process start. Runs over its own connection, not the shared
// gate.
func InitSchema(path string) error {
	db, err := OpenAdmin(path)
	if err != nil {
		return fmt.Errorf("failed to open database for schema init: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	for _, migration := range columnMigrations {
		if _, err := db.Exec(migration); err != nil {
			log.Printf("Schema migration skipped: %v", err)
		}
	}
	return nil
}
