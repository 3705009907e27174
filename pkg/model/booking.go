package model

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// DateLayout is the calendar-date wire format for Booking.Date.
const DateLayout = "2006-01-02"

// Customer is captured fresh per booking attempt and embedded by value in the
// booking at creation time. There is no customer account concept; later edits
// never retroactively change past bookings.
type Customer struct {
	Name     string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Surname  string `json:"surname" bson:"surname" validate:"required,min=2,max=100"`
	Gender   string `json:"gender" bson:"gender" validate:"required,oneof=Male Female Other"`
	Age      int    `json:"age" bson:"age" validate:"required,min=16,max=99"`
	HeightCm int    `json:"heightCm" bson:"height_cm" validate:"required,gt=0,max=250"`
	Phone    string `json:"phone" bson:"phone" validate:"required,e164"`
}

// Booking is one training appointment. The (InstructorID, Date, TimeSlot)
// triple is unique among bookings whose status is not cancelled. Status
// starts at pending and is transitioned only by admin action, never by the
// booking flow itself.
type Booking struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty"`
	MotorcycleID string    `json:"motorcycleId" bson:"motorcycle_id" validate:"required"`
	InstructorID string    `json:"instructorId" bson:"instructor_id" validate:"required"`
	Date         string    `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot     string    `json:"timeSlot" bson:"time_slot" validate:"required,timeslot"`
	Customer     Customer  `json:"customer" bson:"customer" validate:"required"`
	Status       string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"created_at" validate:"omitempty"`
}

// BookingRequest is the submission body assembled by the booking wizard.
// It carries exactly these five fields; id, status, and createdAt are
// server-assigned and must never appear here.
type BookingRequest struct {
	MotorcycleID string   `json:"motorcycleId" validate:"required"`
	InstructorID string   `json:"instructorId" validate:"required"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot     string   `json:"timeSlot" validate:"required,timeslot"`
	Customer     Customer `json:"customer" validate:"required"`
}

// BookingUpdate carries the only in-place mutation a booking supports:
// a status transition performed by an admin (confirm or cancel).
type BookingUpdate struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}
