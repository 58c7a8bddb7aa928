package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a member is already present in a roster
	ErrConflict = errors.New("conflict: member already present")

	// ErrNotMember is returned when removing a member that isn't present
	ErrNotMember = errors.New("not a member")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
