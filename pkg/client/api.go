package client

import (
	"context"

	"motovasiya/pkg/model"
)

// Session is the result of an email-only login.
type Session struct {
	Token      string           `json:"token"`
	Instructor model.Instructor `json:"instructor"`
}

// API is the booking/fleet/identity collaborator the front-end flow talks
// to. Two implementations exist: the REST JSON client (authoritative) and a
// local store used as an offline mock.
type API interface {
	// Public surface.
	ListInstructors(ctx context.Context) ([]model.Instructor, error)
	ListMotorcycles(ctx context.Context) ([]model.Motorcycle, error)
	CreateBooking(ctx context.Context, req model.BookingRequest) (model.Booking, error)
	Login(ctx context.Context, email string) (Session, error)

	// Admin-scoped surface; requires a session token from Login.
	ListAllInstructors(ctx context.Context) ([]model.Instructor, error)
	ListAllMotorcycles(ctx context.Context) ([]model.Motorcycle, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status string) (model.Booking, error)
	DeleteBooking(ctx context.Context, id string) error

	CreateInstructor(ctx context.Context, instructor model.Instructor) (model.Instructor, error)
	UpdateInstructor(ctx context.Context, id string, updates model.InstructorUpdate) (model.Instructor, error)
	ToggleInstructorStatus(ctx context.Context, id string) (model.Instructor, error)
	DeleteInstructor(ctx context.Context, id string) error

	CreateMotorcycle(ctx context.Context, motorcycle model.Motorcycle) (model.Motorcycle, error)
	DeleteMotorcycle(ctx context.Context, id string) error
}
