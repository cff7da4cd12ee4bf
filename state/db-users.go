package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

type User struct {
	ID           int    `db:"user_id" json:"user_id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	Name         string `db:"name" json:"name"`
	Role         string `db:"role" json:"role"`
	CreatedAt    string `db:"created_at" json:"created_at"`
}

func GetUserByUsername(d *database.Database, username string) (*User, error) {
	var u User
	err := d.WithConn(func(db *sqlx.DB) error {
		return db.Get(&u,
			`SELECT user_id, username, password_hash, name, role, created_at FROM users WHERE username = $1`,
			username)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %s", database.ErrNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return &u, nil
}

func CreateUser(d *database.Database, username, password, name, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	err = d.WithConn(func(db *sqlx.DB) error {
		_, err := db.Exec(
			`INSERT INTO users (username, password_hash, name, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
			username, string(hash), name, role, time.Now().Format(time.RFC3339))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", username, err)
	}
	return nil
}

// AttemptLogin checks the password for username and reports whether it
// matched, along with the user id on a match.
func AttemptLogin(d *database.Database, username, password string) (bool, int, error) {
	user, err := GetUserByUsername(d, username)
	if err != nil {
		return false, 0, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return false, 0, nil
	}
	return true, user.ID, nil
}
