package errors

import "errors"

var (
	ErrNotFound = errors.New("instructor not found")

	ErrInvalidID = errors.New("invalid instructor ID format")

	ErrDuplicateEmail = errors.New("instructor email already in use")
)
