package flow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"motovasiya/pkg/model"
)

// Step is how far the booking wizard has progressed. Each step is gated on
// its predecessor.
type Step int

const (
	StepEmpty Step = iota
	StepBikeChosen
	StepInstructorChosen
	StepDateChosen
	StepTimeChosen
	StepDetailsValid
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepEmpty:
		return "empty"
	case StepBikeChosen:
		return "bike_chosen"
	case StepInstructorChosen:
		return "instructor_chosen"
	case StepDateChosen:
		return "date_chosen"
	case StepTimeChosen:
		return "time_chosen"
	case StepDetailsValid:
		return "details_valid"
	case StepSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Draft accumulates the wizard selections for one booking attempt.
// Re-selecting any earlier step clears every later selection, so the draft
// never carries a stale combination. Not safe for concurrent use; the
// submitter serializes access.
type Draft struct {
	schedule Schedule
	validate *validator.Validate
	now      func() time.Time

	step         Step
	motorcycleID string
	instructorID string
	date         string
	timeSlot     string
	customer     model.Customer

	// generation increments on Reset so an in-flight submission started
	// against a discarded draft cannot complete it.
	generation uint64
}

func NewDraft(schedule Schedule) *Draft {
	return &Draft{
		schedule: schedule,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (d *Draft) Step() Step { return d.step }

func (d *Draft) MotorcycleID() string { return d.motorcycleID }

func (d *Draft) InstructorID() string { return d.instructorID }

func (d *Draft) Date() string { return d.date }

func (d *Draft) TimeSlot() string { return d.timeSlot }

func (d *Draft) Customer() model.Customer { return d.customer }

// SelectMotorcycle starts or restarts the wizard. Any previously chosen
// instructor, date, time, and details are discarded.
func (d *Draft) SelectMotorcycle(motorcycleID string) error {
	if d.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if motorcycleID == "" {
		return errors.New("motorcycle id cannot be empty")
	}
	d.motorcycleID = motorcycleID
	d.instructorID = ""
	d.date = ""
	d.timeSlot = ""
	d.customer = model.Customer{}
	d.step = StepBikeChosen
	return nil
}

// SelectInstructor requires a chosen bike and discards any later selections.
func (d *Draft) SelectInstructor(instructorID string) error {
	if d.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if d.step < StepBikeChosen {
		return ErrOutOfOrder
	}
	if instructorID == "" {
		return errors.New("instructor id cannot be empty")
	}
	d.instructorID = instructorID
	d.date = ""
	d.timeSlot = ""
	d.customer = model.Customer{}
	d.step = StepInstructorChosen
	return nil
}

// SelectDate requires a chosen instructor. Changing the date always clears
// the chosen time.
func (d *Draft) SelectDate(date string) error {
	if d.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if d.step < StepInstructorChosen {
		return ErrOutOfOrder
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if !d.schedule.ContainsDate(d.now(), date) {
		return ErrDateOutOfWindow
	}
	d.date = date
	d.timeSlot = ""
	d.customer = model.Customer{}
	d.step = StepDateChosen
	return nil
}

// SelectTime requires a chosen date and rejects slots outside the template
// or already taken for the chosen instructor. The caller passes the booking
// list it last loaded; the check is advisory, the backend enforces the same
// rule authoritatively.
func (d *Draft) SelectTime(bookings []model.Booking, timeSlot string) error {
	if d.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if d.step < StepDateChosen {
		return ErrOutOfOrder
	}
	if !d.schedule.Contains(timeSlot) {
		return ErrUnknownSlot
	}
	if IsSlotBusy(bookings, d.date, timeSlot, d.instructorID) {
		return ErrSlotTaken
	}
	d.timeSlot = timeSlot
	d.customer = model.Customer{}
	d.step = StepTimeChosen
	return nil
}

// SetCustomer validates the rider details and, when valid, marks the draft
// ready for submission. Invalid details leave the draft at the time step and
// never reach the network.
func (d *Draft) SetCustomer(c model.Customer) error {
	if d.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if d.step < StepTimeChosen {
		return ErrOutOfOrder
	}

	c.Name = strings.TrimSpace(c.Name)
	c.Surname = strings.TrimSpace(c.Surname)
	if err := d.validate.Struct(c); err != nil {
		return err
	}

	d.customer = c
	d.step = StepDetailsValid
	return nil
}

// Request assembles the submission body. Only a fully completed draft can
// produce one; the body carries exactly the five wizard selections.
func (d *Draft) Request() (model.BookingRequest, error) {
	if d.step != StepDetailsValid {
		return model.BookingRequest{}, ErrNotReady
	}
	return model.BookingRequest{
		MotorcycleID: d.motorcycleID,
		InstructorID: d.instructorID,
		Date:         d.date,
		TimeSlot:     d.timeSlot,
		Customer:     d.customer,
	}, nil
}

// Reset discards every selection and invalidates any in-flight submission
// started against the old draft.
func (d *Draft) Reset() {
	d.generation++
	d.step = StepEmpty
	d.motorcycleID = ""
	d.instructorID = ""
	d.date = ""
	d.timeSlot = ""
	d.customer = model.Customer{}
}
