package service

import (
	"context"
	"testing"

	bookingserrors "motovasiya/internal/bookings/errors"
	"motovasiya/internal/bookings/validator"
	"motovasiya/pkg/config"
	mongotx "motovasiya/pkg/db/mongo"
	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/kafka"
	"motovasiya/pkg/logger"
	"motovasiya/pkg/model"
)

var testTimeSlots = []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}

type mockBookingRepository struct {
	createFunc             func(ctx context.Context, booking *model.Booking) error
	findByIDFunc           func(ctx context.Context, id string) (*model.Booking, error)
	findAllFunc            func(ctx context.Context) ([]*model.Booking, error)
	findBySlotFunc         func(ctx context.Context, instructorID, date, timeSlot string) ([]*model.Booking, error)
	updateStatusFunc       func(ctx context.Context, id string, status string) error
	deleteFunc             func(ctx context.Context, id string) error
	executeTransactionFunc func(ctx context.Context, fn mongotx.TransactionFunc) error
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "bk-1"
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockBookingRepository) FindBySlot(ctx context.Context, instructorID, date, timeSlot string) ([]*model.Booking, error) {
	if m.findBySlotFunc != nil {
		return m.findBySlotFunc(ctx, instructorID, date, timeSlot)
	}
	return nil, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ExecuteTransaction runs the callback directly; there is no session in unit
// tests.
func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	if m.executeTransactionFunc != nil {
		return m.executeTransactionFunc(ctx, fn)
	}
	return fn(nil)
}

func (m *mockBookingRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

type mockPublisher struct {
	publishFunc func(ctx context.Context, msg kafka.Message) error
}

func (m *mockPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, msg)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		TimeSlots: testTimeSlots,
		Log:       logger.New(logger.Config{Level: logger.ERROR, Service: "test"}),
	}
}

func newTestService(repo *mockBookingRepository, publisher EventPublisher) BookingService {
	cfg := testConfig()
	v := validator.NewBookingValidator(cfg.Log, cfg.TimeSlots)
	return NewBookingService(repo, v, publisher, cfg)
}

func validRequest() *model.BookingRequest {
	return &model.BookingRequest{
		MotorcycleID: "moto-1",
		InstructorID: "inst-1",
		Date:         "2026-09-01",
		TimeSlot:     "10:00",
		Customer: model.Customer{
			Name:     "Ali",
			Surname:  "Vali",
			Gender:   model.GenderMale,
			Age:      25,
			HeightCm: 180,
			Phone:    "+994501234567",
		},
	}
}

func TestCreateBooking_Success(t *testing.T) {
	var created *model.Booking
	repo := &mockBookingRepository{
		createFunc: func(_ context.Context, booking *model.Booking) error {
			booking.ID = "bk-1"
			created = booking
			return nil
		},
	}

	var published []kafka.Message
	publisher := &mockPublisher{
		publishFunc: func(_ context.Context, msg kafka.Message) error {
			published = append(published, msg)
			return nil
		},
	}

	svc := newTestService(repo, publisher)

	booking, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if booking.ID != "bk-1" {
		t.Errorf("booking ID = %q, want bk-1", booking.ID)
	}
	if booking.Status != model.StatusPending {
		t.Errorf("booking status = %q, want pending", booking.Status)
	}
	if created == nil {
		t.Fatal("repository create was not called")
	}

	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	event := published[0]
	if event.Key != "inst-1" {
		t.Errorf("event key = %q, want the instructor ID", event.Key)
	}
	if event.GetEventType() != "booking.created" {
		t.Errorf("event type = %q, want booking.created", event.GetEventType())
	}

	var payload model.Booking
	if err := event.DecodeValue(&payload); err != nil {
		t.Fatalf("decode event payload: %v", err)
	}
	if payload.ID != "bk-1" {
		t.Errorf("event payload ID = %q, want bk-1", payload.ID)
	}
}

func TestCreateBooking_NilPublisher(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	if _, err := svc.Create(context.Background(), validRequest()); err != nil {
		t.Fatalf("Create without publisher: %v", err)
	}
}

func TestCreateBooking_PublishFailureDoesNotFailBooking(t *testing.T) {
	publisher := &mockPublisher{
		publishFunc: func(context.Context, kafka.Message) error {
			return apperrors.Internal("broker down", nil)
		},
	}
	svc := newTestService(&mockBookingRepository{}, publisher)

	if _, err := svc.Create(context.Background(), validRequest()); err != nil {
		t.Fatalf("Create with failing publisher: %v", err)
	}
}

func TestCreateBooking_SlotAlreadyBooked(t *testing.T) {
	repo := &mockBookingRepository{
		findBySlotFunc: func(_ context.Context, instructorID, date, timeSlot string) ([]*model.Booking, error) {
			return []*model.Booking{
				{InstructorID: instructorID, Date: date, TimeSlot: timeSlot, Status: model.StatusPending},
			}, nil
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.Create(context.Background(), validRequest())
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Fatalf("Create on busy slot err = %v, want CONFLICT", err)
	}
}

func TestCreateBooking_DuplicateKeyRace(t *testing.T) {
	// The insert loses a race: FindBySlot saw nothing but the unique index
	// rejects the write.
	repo := &mockBookingRepository{
		createFunc: func(context.Context, *model.Booking) error {
			return bookingserrors.ErrSlotTaken
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.Create(context.Background(), validRequest())
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Fatalf("Create on index conflict err = %v, want CONFLICT", err)
	}
}

func TestCreateBooking_ValidationShortCircuits(t *testing.T) {
	repoCalled := false
	repo := &mockBookingRepository{
		executeTransactionFunc: func(_ context.Context, fn mongotx.TransactionFunc) error {
			repoCalled = true
			return fn(nil)
		},
	}
	svc := newTestService(repo, nil)

	tests := []struct {
		name   string
		mutate func(*model.BookingRequest)
	}{
		{"off-template slot", func(r *model.BookingRequest) { r.TimeSlot = "13:00" }},
		{"malformed date", func(r *model.BookingRequest) { r.Date = "01.09.2026" }},
		{"underage customer", func(r *model.BookingRequest) { r.Customer.Age = 15 }},
		{"unparseable phone", func(r *model.BookingRequest) { r.Customer.Phone = "not-a-number" }},
		{"missing motorcycle", func(r *model.BookingRequest) { r.MotorcycleID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			if !apperrors.HasCode(err, apperrors.CodeValidation) {
				t.Fatalf("Create err = %v, want VALIDATION_ERROR", err)
			}
			if repoCalled {
				t.Error("repository reached with an invalid request")
			}
		})
	}
}

func TestCreateBooking_SanitizesCustomer(t *testing.T) {
	var created *model.Booking
	repo := &mockBookingRepository{
		createFunc: func(_ context.Context, booking *model.Booking) error {
			booking.ID = "bk-1"
			created = booking
			return nil
		},
	}
	svc := newTestService(repo, nil)

	req := validRequest()
	req.Customer.Name = "  Ali  "
	req.Customer.Surname = "Abdul \t Vali"
	req.Customer.Phone = "0501234567"

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Customer.Name != "Ali" {
		t.Errorf("sanitized name = %q, want Ali", created.Customer.Name)
	}
	if created.Customer.Surname != "Abdul Vali" {
		t.Errorf("sanitized surname = %q, want Abdul Vali", created.Customer.Surname)
	}
	if created.Customer.Phone != "+994501234567" {
		t.Errorf("sanitized phone = %q, want +994501234567", created.Customer.Phone)
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"pending to confirmed", model.StatusPending, model.StatusConfirmed, false},
		{"pending to cancelled", model.StatusPending, model.StatusCancelled, false},
		{"confirmed to cancelled", model.StatusConfirmed, model.StatusCancelled, false},
		{"confirmed back to confirmed", model.StatusConfirmed, model.StatusConfirmed, true},
		{"cancelled to confirmed", model.StatusCancelled, model.StatusConfirmed, true},
		{"cancelled to cancelled", model.StatusCancelled, model.StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{
				findByIDFunc: func(_ context.Context, id string) (*model.Booking, error) {
					return &model.Booking{ID: id, Status: tt.from}, nil
				},
			}
			svc := newTestService(repo, nil)

			booking, err := svc.UpdateStatus(context.Background(), "bk-1", &model.BookingUpdate{Status: tt.to})

			if tt.wantErr {
				if !apperrors.HasCode(err, apperrors.CodeConflict) {
					t.Fatalf("UpdateStatus err = %v, want CONFLICT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus: %v", err)
			}
			if booking.Status != tt.to {
				t.Errorf("booking status = %q, want %q", booking.Status, tt.to)
			}
		})
	}
}

func TestUpdateStatus_InvalidInput(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	if _, err := svc.UpdateStatus(context.Background(), "", &model.BookingUpdate{Status: model.StatusConfirmed}); err == nil {
		t.Error("empty ID accepted")
	}

	// "pending" is never a target status.
	_, err := svc.UpdateStatus(context.Background(), "bk-1", &model.BookingUpdate{Status: model.StatusPending})
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Errorf("UpdateStatus to pending err = %v, want VALIDATION_ERROR", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	_, err := svc.UpdateStatus(context.Background(), "missing", &model.BookingUpdate{Status: model.StatusConfirmed})
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("UpdateStatus on missing booking err = %v, want NOT_FOUND", err)
	}
}

func TestDeleteBooking(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	if err := svc.Delete(context.Background(), "bk-1"); err != nil {
		t.Errorf("Delete: %v", err)
	}

	repo := &mockBookingRepository{
		deleteFunc: func(context.Context, string) error {
			return bookingserrors.ErrNotFound
		},
	}
	svc = newTestService(repo, nil)
	if err := svc.Delete(context.Background(), "missing"); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("Delete missing booking err = %v, want NOT_FOUND", err)
	}
}

func TestGetAll(t *testing.T) {
	repo := &mockBookingRepository{
		findAllFunc: func(context.Context) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: "bk-2"},
				{ID: "bk-1"},
			}, nil
		},
	}
	svc := newTestService(repo, nil)

	bookings, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
}
