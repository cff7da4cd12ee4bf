package state

import (
	"errors"
	"testing"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

func TestCreateRentalMarksVehicleRented(t *testing.T) {
	d := newTestDB(t)
	vehicle := mustCreateVehicle(t, d, "Vario", "B1234XY", 50000)
	customer := mustCreateCustomer(t, d, "Budi")

	if got := vehicleStatus(t, d, vehicle.ID); got != VehicleAvailable {
		t.Fatalf("new vehicle status = %q, want %q", got, VehicleAvailable)
	}

	err := CreateRental(d, Rental{
		VehicleID:         vehicle.ID,
		CustomerID:        customer.ID,
		StartDate:         "2024-01-01",
		PlannedReturnDate: "2024-01-03",
	})
	if err != nil {
		t.Fatalf("CreateRental returned error: %v", err)
	}

	if got := vehicleStatus(t, d, vehicle.ID); got != VehicleRented {
		t.Errorf("vehicle status after rental create = %q, want %q", got, VehicleRented)
	}

	rentals, err := ListRentals(d)
	if err != nil {
		t.Fatalf("ListRentals returned error: %v", err)
	}
	if len(rentals) != 1 {
		t.Fatalf("expected 1 rental, got %d", len(rentals))
	}
	if rentals[0].Status != RentalActive {
		t.Errorf("new rental status = %q, want %q", rentals[0].Status, RentalActive)
	}
}

func TestReturningRentalFreesVehicle(t *testing.T) {
	d := newTestDB(t)
	vehicle := mustCreateVehicle(t, d, "Vario", "B1234XY", 50000)
	customer := mustCreateCustomer(t, d, "Budi")

	if err := CreateRental(d, Rental{
		VehicleID:         vehicle.ID,
		CustomerID:        customer.ID,
		StartDate:         "2024-01-01",
		PlannedReturnDate: "2024-01-03",
	}); err != nil {
		t.Fatalf("CreateRental returned error: %v", err)
	}
	rentals, _ := ListRentals(d)
	rental := rentals[0]

	rental.Status = RentalReturned
	if err := UpdateRental(d, rental.ID, rental); err != nil {
		t.Fatalf("UpdateRental returned error: %v", err)
	}

	if got := vehicleStatus(t, d, vehicle.ID); got != VehicleAvailable {
		t.Errorf("vehicle status after return = %q, want %q", got, VehicleAvailable)
	}
}

func TestDeleteRentalFreesVehicle(t *testing.T) {
	d := newTestDB(t)
	vehicle := mustCreateVehicle(t, d, "Beat", "B5678ZZ", 40000)
	customer := mustCreateCustomer(t, d, "Sari")

	if err := CreateRental(d, Rental{
		VehicleID:         vehicle.ID,
		CustomerID:        customer.ID,
		StartDate:         "2024-02-01",
		PlannedReturnDate: "2024-02-05",
	}); err != nil {
		t.Fatalf("CreateRental returned error: %v", err)
	}
	rentals, _ := ListRentals(d)

	if err := DeleteRental(d, rentals[0].ID); err != nil {
		t.Fatalf("DeleteRental returned error: %v", err)
	}

	if got := vehicleStatus(t, d, vehicle.ID); got != VehicleAvailable {
		t.Errorf("vehicle status after delete = %q, want %q", got, VehicleAvailable)
	}
	if _, err := GetRentalByID(d, rentals[0].ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("GetRentalByID after delete = %v, want ErrNotFound", err)
	}
}

func TestUpdateRentalVehicleSwap(t *testing.T) {
	d := newTestDB(t)
	v1 := mustCreateVehicle(t, d, "Vario", "B1111AA", 50000)
	v2 := mustCreateVehicle(t, d, "Beat", "B2222BB", 40000)
	customer := mustCreateCustomer(t, d, "Budi")

	// Two active rentals on v1. Swapping one of them to v2 still frees v1;
	// the old vehicle is released unconditionally on a reference change.
	for i := 0; i < 2; i++ {
		if err := CreateRental(d, Rental{
			VehicleID:         v1.ID,
			CustomerID:        customer.ID,
			StartDate:         "2024-03-01",
			PlannedReturnDate: "2024-03-04",
		}); err != nil {
			t.Fatalf("CreateRental returned error: %v", err)
		}
	}
	rentals, _ := ListRentals(d)
	swapped := rentals[0]
	swapped.VehicleID = v2.ID
	swapped.Status = RentalActive

	if err := UpdateRental(d, swapped.ID, swapped); err != nil {
		t.Fatalf("UpdateRental returned error: %v", err)
	}

	if got := vehicleStatus(t, d, v1.ID); got != VehicleAvailable {
		t.Errorf("old vehicle status after swap = %q, want %q", got, VehicleAvailable)
	}
	if got := vehicleStatus(t, d, v2.ID); got != VehicleRented {
		t.Errorf("new vehicle status after swap = %q, want %q", got, VehicleRented)
	}
}

func TestUpdateRentalVehicleSwapReturned(t *testing.T) {
	d := newTestDB(t)
	v1 := mustCreateVehicle(t, d, "Vario", "B1111AA", 50000)
	v2 := mustCreateVehicle(t, d, "Beat", "B2222BB", 40000)
	customer := mustCreateCustomer(t, d, "Budi")

	if err := CreateRental(d, Rental{
		VehicleID:         v1.ID,
		CustomerID:        customer.ID,
		StartDate:         "2024-03-01",
		PlannedReturnDate: "2024-03-04",
	}); err != nil {
		t.Fatalf("CreateRental returned error: %v", err)
	}
	rentals, _ := ListRentals(d)
	rental := rentals[0]
	rental.VehicleID = v2.ID
	rental.Status = RentalReturned

	if err := UpdateRental(d, rental.ID, rental); err != nil {
		t.Fatalf("UpdateRental returned error: %v", err)
	}

	// A swap-and-return frees both vehicles.
	if got := vehicleStatus(t, d, v1.ID); got != VehicleAvailable {
		t.Errorf("old vehicle status = %q, want %q", got, VehicleAvailable)
	}
	if got := vehicleStatus(t, d, v2.ID); got != VehicleAvailable {
		t.Errorf("new vehicle status = %q, want %q", got, VehicleAvailable)
	}
}

func TestUpdateRentalNotFound(t *testing.T) {
	d := newTestDB(t)
	err := UpdateRental(d, 999, Rental{VehicleID: 1, CustomerID: 1, Status: RentalActive})
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("UpdateRental on missing id = %v, want ErrNotFound", err)
	}
}

func TestDeleteRentalMissingIsTolerated(t *testing.T) {
	d := newTestDB(t)
	if err := DeleteRental(d, 999); err != nil {
		t.Errorf("DeleteRental on missing id returned error: %v", err)
	}
}

func TestGetRentalByIDNotFound(t *testing.T) {
	d := newTestDB(t)
	if _, err := GetRentalByID(d, 42); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("GetRentalByID on missing id = %v, want ErrNotFound", err)
	}
}
