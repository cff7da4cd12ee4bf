package state

import (
	"testing"

	"github.com/jmoiron/sqlx"
)

func TestGetSettingMissingKeyReturnsEmpty(t *testing.T) {
	d := newTestDB(t)
	value, err := GetSetting(d, "never-set")
	if err != nil {
		t.Fatalf("GetSetting returned error: %v", err)
	}
	if value != "" {
		t.Errorf("GetSetting on missing key = %q, want empty string", value)
	}
}

func TestSetSettingRoundTrip(t *testing.T) {
	d := newTestDB(t)
	if err := SetSetting(d, "shop_name", "Rental Motor Jaya", "display name"); err != nil {
		t.Fatalf("SetSetting returned error: %v", err)
	}
	value, err := GetSetting(d, "shop_name")
	if err != nil {
		t.Fatalf("GetSetting returned error: %v", err)
	}
	if value != "Rental Motor Jaya" {
		t.Errorf("GetSetting = %q, want %q", value, "Rental Motor Jaya")
	}
}

func TestSetSettingOverwrites(t *testing.T) {
	d := newTestDB(t)
	if err := SetSetting(d, "rate", "50000", ""); err != nil {
		t.Fatalf("SetSetting returned error: %v", err)
	}
	if err := SetSetting(d, "rate", "60000", "updated"); err != nil {
		t.Fatalf("SetSetting (overwrite) returned error: %v", err)
	}

	value, err := GetSetting(d, "rate")
	if err != nil {
		t.Fatalf("GetSetting returned error: %v", err)
	}
	if value != "60000" {
		t.Errorf("GetSetting after overwrite = %q, want %q", value, "60000")
	}

	var count int
	err = d.WithConn(func(db *sqlx.DB) error {
		return db.Get(&count, `SELECT COUNT(*) FROM settings WHERE key = $1`, "rate")
	})
	if err != nil {
		t.Fatalf("count query returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row for key, got %d", count)
	}
}
