package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrSlotTaken = errors.New("time slot already booked for this instructor")

	ErrInvalidTransition = errors.New("booking status transition not allowed")
)
