package database

// Database owns the single shared SQLite connection for the bookkeeping
// process and serializes every data operation through it. Callers never see
// the raw connection outside a WithConn/WithTx callback.

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Applied to every connection at open. WAL keeps readers from blocking the
// writer and the busy timeout bounds how long a contending caller waits
// before the engine reports SQLITE_BUSY.
const connPragmas = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 30000;
PRAGMA temp_store = MEMORY;
PRAGMA cache_size = -64000;
`

const adminPragmas = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 30000;
`

type Database struct {
	mu   sync.Mutex
	db   *sqlx.DB
	path string
}

// Connect opens the shared connection. The pool is pinned to a single
// connection so the pragmas hold for every statement.
func Connect(path string) (*Database, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(connPragmas); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database %s: %w", path, err)
	}
	return &Database{db: db, path: path}, nil
}

// OpenAdmin opens an independent one-off connection outside the shared
// gate. Used only during schema initialization.
func OpenAdmin(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(adminPragmas); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database %s: %w", path, err)
	}
	return db, nil
}

// WithConn locks the shared connection for the duration of fn.
func (d *Database) WithConn(fn func(db *sqlx.DB) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(d.db)
}

// WithTx locks the shared connection and runs fn inside a database
// transaction. The transaction commits only if fn returns nil.
func (d *Database) WithTx(fn func(tx *sqlx.Tx) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	tx, err := d.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Checkpoint folds pending WAL content into the main database file so a raw
// file copy captures all committed writes.
func (d *Database) Checkpoint() error {
	return d.WithConn(func(db *sqlx.DB) error {
		if _, err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
			return fmt.Errorf("failed to checkpoint WAL: %w", err)
		}
		return nil
	})
}

// Path returns the location of the live database file.
func (d *Database) Path() string {
	return d.path
}

func (d *Database) Close() error {
	return d.db.Close()
}
