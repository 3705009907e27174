package service

import (
	"context"
	"errors"

	bookingserrors "motovasiya/internal/bookings/errors"
	"motovasiya/internal/bookings/repository"
	"motovasiya/internal/bookings/validator"
	"motovasiya/pkg/config"
	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/kafka"
	"motovasiya/pkg/model"
	"motovasiya/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

// EventPublisher pushes booking lifecycle events for the notifier. A nil
// publisher disables events.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create validates and stores a booking request. Slot exclusivity is
// enforced twice: a verify-then-insert inside a transaction, backed by the
// partial unique index for concurrent writers that race past the check.
func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	s.sanitizeRequest(req)

	if err := s.validator.ValidateRequest(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	booking := &model.Booking{
		MotorcycleID: req.MotorcycleID,
		InstructorID: req.InstructorID,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		Customer:     req.Customer,
		Status:       model.StatusPending,
	}

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifySlotFree(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			if errors.Is(err, bookingserrors.ErrSlotTaken) {
				return apperrors.Conflict("This time slot is already booked for the selected instructor")
			}
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, err
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"instructor_id", booking.InstructorID,
		"date", booking.Date,
		"time_slot", booking.TimeSlot,
	)

	s.publishCreated(ctx, booking)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translateLookupError(err, id)
	}
	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// UpdateStatus applies an admin status transition. A pending booking can be
// confirmed or cancelled; a confirmed booking can only be cancelled; a
// cancelled booking is final.
func (s *bookingService) UpdateStatus(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translateLookupError(err, id)
	}

	if err := validTransition(existing.Status, updates.Status); err != nil {
		return nil, apperrors.Conflict(err.Error())
	}

	if err := s.repo.UpdateStatus(ctx, id, updates.Status); err != nil {
		s.cfg.Log.Error("Failed to update booking status", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking", err)
	}

	existing.Status = updates.Status
	s.cfg.Log.Info("Booking status updated", "id", id, "status", updates.Status)
	return existing, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *bookingService) sanitizeRequest(req *model.BookingRequest) {
	req.Customer.Name = sanitizer.NormalizeName(req.Customer.Name)
	req.Customer.Surname = sanitizer.NormalizeName(req.Customer.Surname)
	if normalized := sanitizer.NormalizePhone(req.Customer.Phone); normalized != "" {
		req.Customer.Phone = normalized
	}
}

func (s *bookingService) verifySlotFree(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindBySlot(ctx, booking.InstructorID, booking.Date, booking.TimeSlot)
	if err != nil {
		return apperrors.Internal("Failed to check slot availability", err)
	}
	if len(existing) > 0 {
		return apperrors.Conflict("This time slot is already booked for the selected instructor")
	}
	return nil
}

// publishCreated emits the booking.created event. Notification is
// best-effort: a publish failure is logged and never fails the booking.
func (s *bookingService) publishCreated(ctx context.Context, booking *model.Booking) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(booking.InstructorID).
		WithValue(booking).
		WithEventType("booking.created").
		WithSource("motovasiya-server").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish booking.created event",
			"booking_id", booking.ID,
			"instructor_id", booking.InstructorID,
			"error", err,
		)
	}
}

func validTransition(from, to string) error {
	switch from {
	case model.StatusPending:
		if to == model.StatusConfirmed || to == model.StatusCancelled {
			return nil
		}
	case model.StatusConfirmed:
		if to == model.StatusCancelled {
			return nil
		}
	}
	return bookingserrors.ErrInvalidTransition
}

func (s *bookingService) translateLookupError(err error, id string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	return apperrors.Internal("Failed to retrieve booking", err)
}
