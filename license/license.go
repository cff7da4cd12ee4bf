package license

// License keys are an HMAC-SHA256 of the machine identifier under a fixed
// secret, hex encoded. Verification is stateless; activation persists the
// key next to the database so it survives restarts.

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const secretKey = "rent_motor_secret_key_v1_secure_8823"

const licenseFile = "license.dat"

// MachineID returns a stable identifier for this installation host.
func MachineID() (string, error) {
	if data, err := os.ReadFile("/etc/machine-id"); err == nil {
		return strings.TrimSpace(string(data)), nil
	}
	host, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to determine machine id: %w", err)
	}
	return host, nil
}

// GenerateKey computes the license key for a machine identifier. The vendor
// runs this against the id a customer reports to issue their key.
func GenerateKey(machineID string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(machineID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether key is valid for this machine.
func Verify(key string) (bool, error) {
	id, err := MachineID()
	if err != nil {
		return false, err
	}
	expected := GenerateKey(id)
	return hmac.Equal([]byte(strings.TrimSpace(key)), []byte(expected)), nil
}

// Activate verifies key and, when valid, persists it under dataDir.
func Activate(dataDir, key string) (bool, error) {
	ok, err := Verify(key)
	if err != nil || !ok {
		return false, err
	}
	path := filepath.Join(dataDir, licenseFile)
	if err := os.WriteFile(path, []byte(key), 0o644); err != nil {
		return false, fmt.Errorf("failed to write license file: %w", err)
	}
	return true, nil
}

// Status reports whether a valid license has been activated on this machine.
// A missing license file means not activated, not an error.
func Status(dataDir string) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, licenseFile))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read license file: %w", err)
	}
	return Verify(string(data))
}
