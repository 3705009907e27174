package errors

import "errors"

var (
	ErrNotFound = errors.New("motorcycle not found")

	ErrInvalidID = errors.New("invalid motorcycle ID format")
)
