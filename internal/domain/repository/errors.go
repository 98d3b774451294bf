package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert would violate email uniqueness.
	ErrDuplicateEmail = errors.New("email already registered")
)
