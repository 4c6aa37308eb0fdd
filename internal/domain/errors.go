package domain

import "errors"

var (
	// ErrNotFound indicates an unknown event id within a session.
	ErrNotFound = errors.New("event not found")

	// ErrValidation indicates a direct create is missing a required field.
	ErrValidation = errors.New("validation failed")
)
