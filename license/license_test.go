package license

import (
	"testing"
)

func TestVerifyGeneratedKey(t *testing.T) {
	id, err := MachineID()
	if err != nil {
		t.Fatalf("MachineID returned error: %v", err)
	}
	key := GenerateKey(id)

	ok, err := Verify(key)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Error("Verify of generated key = false, want true")
	}

	// Surrounding whitespace is tolerated.
	ok, err = Verify("  " + key + "\n")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Error("Verify of padded key = false, want true")
	}
}

func TestVerifyRejectsBogusKey(t *testing.T) {
	ok, err := Verify("bogus-key")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ok {
		t.Error("Verify of bogus key = true, want false")
	}
}

func TestActivateAndStatus(t *testing.T) {
	dataDir := t.TempDir()

	licensed, err := Status(dataDir)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if licensed {
		t.Error("Status before activation = true, want false")
	}

	id, err := MachineID()
	if err != nil {
		t.Fatalf("MachineID returned error: %v", err)
	}
	ok, err := Activate(dataDir, GenerateKey(id))
	if err != nil {
		t.Fatalf("Activate returned error: %v", err)
	}
	if !ok {
		t.Fatal("Activate of valid key = false, want true")
	}

	licensed, err = Status(dataDir)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if !licensed {
		t.Error("Status after activation = false, want true")
	}
}

func TestActivateRejectsInvalidKey(t *testing.T) {
	dataDir := t.TempDir()
	ok, err := Activate(dataDir, "not-a-real-key")
	if err != nil {
		t.Fatalf("Activate returned error: %v", err)
	}
	if ok {
		t.Error("Activate of invalid key = true, want false")
	}
	licensed, err := Status(dataDir)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if licensed {
		t.Error("Status after failed activation = true, want false")
	}
}
