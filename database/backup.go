package database

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// magicHeader is the 16-byte prefix of every valid SQLite database file.
var magicHeader = []byte("SQLite format 3\x00")

// Export checkpoints the WAL and copies the live database file to destPath,
// creating the destination directory if needed. Returns the destination
// path on success.
func (d *Database) Export(destPath string) (string, error) {
	if _, err := os.Stat(d.path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: database file %s", ErrNotFound, d.path)
		}
		return "", fmt.Errorf("failed to stat database file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	// Without the checkpoint a raw copy can miss commits still resident in
	// the WAL.
	if err := d.Checkpoint(); err != nil {
		return "", err
	}
	if err := copyFile(d.path, destPath); err != nil {
		return "", fmt.Errorf("failed to copy database to %s: %w", destPath, err)
	}
	return destPath, nil
}

// Import replaces the live database file with the file at srcPath. The
// source must carry the SQLite magic header; nothing else about it is
// validated before the overwrite.
func (d *Database) Import(srcPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: backup file %s", ErrNotFound, srcPath)
		}
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	header := make([]byte, len(magicHeader))
	_, readErr := io.ReadFull(src, header)
	src.Close()
	if readErr != nil || !bytes.Equal(header, magicHeader) {
		return fmt.Errorf("%w: %s is not a SQLite database", ErrInvalidFormat, srcPath)
	}

	// Release WAL/SHM state held against the live file before overwriting.
	if err := d.Checkpoint(); err != nil {
		return err
	}
	if err := copyFile(srcPath, d.path); err != nil {
		return fmt.Errorf("failed to restore database from %s: %w", srcPath, err)
	}
	// Stale sidecars belong to the old database; the next connection open
	// recreates them, so removal failures are only logged.
	for _, suffix := range []string{"-wal", "-shm"} {
		if err := os.Remove(d.path + suffix); err != nil && !os.IsNotExist(err) {
			log.Printf("Could not remove stale sidecar %s%s: %v", d.path, suffix, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
