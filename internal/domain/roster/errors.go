package roster

import "errors"

var (
	// ErrActivityNotFound indicates the activity name isn't on the roster.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the student is already signed up.
	ErrAlreadyRegistered = errors.New("student is already signed up")
	// ErrNotRegistered indicates the student isn't signed up for the activity.
	ErrNotRegistered = errors.New("student is not signed up for this activity")
	// ErrInvalidInput indicates a missing or malformed input.
	ErrInvalidInput = errors.New("invalid roster input")
)
