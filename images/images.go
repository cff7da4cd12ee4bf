package images

// Photo payloads arrive from the UI as data URIs: "<mime-prefix>,<base64>".
// Save decodes the payload and writes it under a per-kind subdirectory of
// the data dir, returning the path of the written file.

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Adhi57/AplikasiPembukuanRentalMotor/database"
)

func Save(dataDir, kind, payload string) (string, error) {
	_, b64, found := strings.Cut(payload, ",")
	if !found {
		return "", fmt.Errorf("%w: missing data-URI prefix", database.ErrInvalidFormat)
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("%w: bad base64 payload: %v", database.ErrInvalidFormat, err)
	}
	dir := filepath.Join(dataDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}
	path := filepath.Join(dir, uuid.New().String()+".png")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}
