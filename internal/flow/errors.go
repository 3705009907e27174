package flow

import "errors"

var (
	// ErrOutOfOrder is returned when a wizard step is attempted before its
	// predecessor is complete.
	ErrOutOfOrder = errors.New("previous step is not complete")

	// ErrUnknownSlot is returned for a time slot outside the daily template.
	ErrUnknownSlot = errors.New("time slot is not part of the schedule")

	// ErrDateOutOfWindow is returned for a date outside the booking window.
	ErrDateOutOfWindow = errors.New("date is outside the booking window")

	// ErrSlotTaken is returned when the chosen slot is already booked for
	// the chosen instructor.
	ErrSlotTaken = errors.New("time slot is already taken")

	// ErrNotReady is returned when a submission body is requested from an
	// incomplete draft.
	ErrNotReady = errors.New("draft is not ready for submission")

	// ErrAlreadySubmitted is returned on attempts to mutate a submitted draft.
	ErrAlreadySubmitted = errors.New("draft has already been submitted")

	// ErrSubmitInFlight is returned when a submission is already running for
	// the draft.
	ErrSubmitInFlight = errors.New("a submission is already in flight")

	// ErrDraftReset is returned when the draft was reset while its
	// submission was in flight.
	ErrDraftReset = errors.New("draft was reset during submission")
)
