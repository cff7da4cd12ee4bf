package state

import (
	"errors"
	"testing"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

func TestVehicleCRUD(t *testing.T) {
	d := newTestDB(t)
	vehicle := mustCreateVehicle(t, d, "Vario", "B1234XY", 50000)

	got, err := GetVehicleByID(d, vehicle.ID)
	if err != nil {
		t.Fatalf("GetVehicleByID returned error: %v", err)
	}
	if got.Name != "Vario" || got.Plate != "B1234XY" || got.DailyRate != 50000 {
		t.Errorf("unexpected vehicle: %+v", got)
	}
	if got.Status != VehicleAvailable {
		t.Errorf("new vehicle status = %q, want %q", got.Status, VehicleAvailable)
	}

	got.Name = "Vario 160"
	if err := UpdateVehicle(d, vehicle.ID, *got); err != nil {
		t.Fatalf("UpdateVehicle returned error: %v", err)
	}
	updated, err := GetVehicleByID(d, vehicle.ID)
	if err != nil {
		t.Fatalf("GetVehicleByID returned error: %v", err)
	}
	if updated.Name != "Vario 160" {
		t.Errorf("name after update = %q, want %q", updated.Name, "Vario 160")
	}

	if err := DeleteVehicle(d, vehicle.ID); err != nil {
		t.Fatalf("DeleteVehicle returned error: %v", err)
	}
	if _, err := GetVehicleByID(d, vehicle.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("GetVehicleByID after delete = %v, want ErrNotFound", err)
	}
}

func TestUpdateVehicleNotFound(t *testing.T) {
	d := newTestDB(t)
	err := UpdateVehicle(d, 123, Vehicle{Name: "Ghost"})
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("UpdateVehicle on missing id = %v, want ErrNotFound", err)
	}
}

func TestGetCustomerByIDNotFound(t *testing.T) {
	d := newTestDB(t)
	if _, err := GetCustomerByID(d, 7); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("GetCustomerByID on missing id = %v, want ErrNotFound", err)
	}
}

func TestExpenseDefaultFundingSource(t *testing.T) {
	d := newTestDB(t)
	if err := CreateExpense(d, Expense{Date: "2024-01-10", Category: "servis", Amount: 150000}); err != nil {
		t.Fatalf("CreateExpense returned error: %v", err)
	}
	expenses, err := ListExpenses(d)
	if err != nil {
		t.Fatalf("ListExpenses returned error: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	if expenses[0].FundingSource != DefaultFundingSource {
		t.Errorf("funding source = %q, want %q", expenses[0].FundingSource, DefaultFundingSource)
	}
}
