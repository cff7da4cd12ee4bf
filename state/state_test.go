package state

import (
	"path"
	"testing"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

// newTestDB creates a temporary database with the full schema applied.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "test_rental.db")
	if err := database.InitSchema(dbPath); err != nil {
		t.Fatalf("InitSchema returned error: %v", err)
	}
	d, err := database.Connect(dbPath)
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func mustCreateVehicle(t *testing.T, d *database.Database, name, plate string, rate int) Vehicle {
	t.Helper()
	if err := CreateVehicle(d, Vehicle{Name: name, Plate: plate, DailyRate: rate, Category: "matic", ModelYear: "2022"}); err != nil {
		t.Fatalf("CreateVehicle returned error: %v", err)
	}
	vehicles, err := ListVehicles(d)
	if err != nil {
		t.Fatalf("ListVehicles returned error: %v", err)
	}
	return vehicles[len(vehicles)-1]
}

func mustCreateCustomer(t *testing.T, d *database.Database, name string) Customer {
	t.Helper()
	if err := CreateCustomer(d, Customer{Name: name, Phone: "0812", NationalID: "317", Address: "Jakarta"}); err != nil {
		t.Fatalf("CreateCustomer returned error: %v", err)
	}
	customers, err := ListCustomers(d)
	if err != nil {
		t.Fatalf("ListCustomers returned error: %v", err)
	}
	return customers[len(customers)-1]
}

func vehicleStatus(t *testing.T, d *database.Database, id int) string {
	t.Helper()
	v, err := GetVehicleByID(d, id)
	if err != nil {
		t.Fatalf("GetVehicleByID(%d) returned error: %v", id, err)
	}
	return v.Status
}
