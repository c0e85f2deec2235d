package services

import "errors"

// Error kinds surfaced by the services. Controllers translate these into
// HTTP status codes with errors.Is; anything unrecognized is treated as a
// storage failure and surfaced as a 500.
var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrAlreadyExists      = errors.New("already exists")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStorage            = errors.New("storage error")
)
