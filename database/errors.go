package database

import "errors"

// Error kinds surfaced by the data layer. The command boundary maps these to
// user-facing messages and HTTP statuses; everything else wraps the
// underlying engine or filesystem error.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidFormat = errors.New("invalid format")
)
