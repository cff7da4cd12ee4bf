package state

import (
	"errors"
	"testing"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

func TestAttemptLogin(t *testing.T) {
	d := newTestDB(t)
	if err := CreateUser(d, "admin", "rahasia123", "Administrator", "admin"); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	ok, userID, err := AttemptLogin(d, "admin", "rahasia123")
	if err != nil {
		t.Fatalf("AttemptLogin returned error: %v", err)
	}
	if !ok {
		t.Error("AttemptLogin with correct password = false, want true")
	}
	if userID == 0 {
		t.Error("AttemptLogin returned zero user id")
	}

	ok, _, err = AttemptLogin(d, "admin", "wrong")
	if err != nil {
		t.Fatalf("AttemptLogin returned error: %v", err)
	}
	if ok {
		t.Error("AttemptLogin with wrong password = true, want false")
	}
}

func TestAttemptLoginUnknownUser(t *testing.T) {
	d := newTestDB(t)
	_, _, err := AttemptLogin(d, "nobody", "whatever")
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("AttemptLogin for unknown user = %v, want ErrNotFound", err)
	}
}
