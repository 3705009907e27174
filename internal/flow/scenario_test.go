package flow

import (
	"context"
	"errors"
	"testing"

	"motovasiya/pkg/client"
	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/model"
)

// End-to-end wizard scenarios wiring the draft, submitter and router
// together against a mocked collaborator.

func TestScenario_BusySlotBlocksUntilFreeSlotPicked(t *testing.T) {
	bookings := []model.Booking{
		{InstructorID: "inst-1", Date: "2026-09-01", TimeSlot: "10:00", Status: model.StatusConfirmed},
	}

	d := newTestDraft(t)
	if err := d.SelectMotorcycle("moto-1"); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectInstructor("inst-1"); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectDate("2026-09-01"); err != nil {
		t.Fatal(err)
	}

	if err := d.SelectTime(bookings, "10:00"); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("busy slot err = %v, want ErrSlotTaken", err)
	}
	if err := d.SelectTime(bookings, "11:00"); err != nil {
		t.Fatalf("free slot err = %v", err)
	}
	if d.TimeSlot() != "11:00" {
		t.Errorf("draft slot = %q, want 11:00", d.TimeSlot())
	}
}

func TestScenario_CancelledBookingFreesSlot(t *testing.T) {
	bookings := []model.Booking{
		{InstructorID: "inst-1", Date: "2026-09-01", TimeSlot: "10:00", Status: model.StatusCancelled},
	}

	d := newTestDraft(t)
	if err := d.SelectMotorcycle("moto-1"); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectInstructor("inst-1"); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectDate("2026-09-01"); err != nil {
		t.Fatal(err)
	}

	if err := d.SelectTime(bookings, "10:00"); err != nil {
		t.Fatalf("cancelled slot err = %v, want nil", err)
	}
}

func TestScenario_HappyPathToSuccessScreen(t *testing.T) {
	api := &mockAPI{
		createBookingFunc: func(_ context.Context, req model.BookingRequest) (model.Booking, error) {
			return model.Booking{
				ID:           "bk-1",
				MotorcycleID: req.MotorcycleID,
				InstructorID: req.InstructorID,
				Date:         req.Date,
				TimeSlot:     req.TimeSlot,
				Customer:     req.Customer,
				Status:       model.StatusPending,
			}, nil
		},
	}
	submitter := NewSubmitter(api, testLogger())
	router := NewRouter()

	router.StartBooking()

	d := newTestDraft(t)
	if err := d.SelectMotorcycle("moto-1"); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectInstructor("inst-1"); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectDate("2026-09-01"); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectTime(nil, "10:00"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetCustomer(model.Customer{
		Name:     "Ali",
		Surname:  "Vali",
		Gender:   model.GenderMale,
		Age:      25,
		HeightCm: 180,
		Phone:    "+994501234567",
	}); err != nil {
		t.Fatal(err)
	}

	booking, err := submitter.Submit(context.Background(), d)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	router.BookingSucceeded(booking)

	if router.Current() != ViewSuccess {
		t.Fatalf("router at %q, want success", router.Current())
	}
	summary := router.Summary()
	if summary.CustomerName != "Ali" {
		t.Errorf("summary name = %q, want Ali", summary.CustomerName)
	}
	if summary.Date != "2026-09-01" || summary.TimeSlot != "10:00" {
		t.Errorf("summary slot = %s %s, want 2026-09-01 10:00", summary.Date, summary.TimeSlot)
	}
}

func TestScenario_UnderageCustomerNeverReachesBackend(t *testing.T) {
	called := false
	api := &mockAPI{
		createBookingFunc: func(context.Context, model.BookingRequest) (model.Booking, error) {
			called = true
			return model.Booking{}, nil
		},
	}
	submitter := NewSubmitter(api, testLogger())

	d := newTestDraft(t)
	advanceToTimeChosen(t, d)

	customer := validCustomer()
	customer.Age = 15
	if err := d.SetCustomer(customer); err == nil {
		t.Fatal("expected underage customer to be rejected")
	}

	if _, err := submitter.Submit(context.Background(), d); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Submit err = %v, want ErrNotReady", err)
	}
	if called {
		t.Error("backend was called for an invalid draft")
	}
}

func TestScenario_UnknownEmailStaysOnLogin(t *testing.T) {
	api := &mockAPI{
		loginFunc: func(_ context.Context, email string) (client.Session, error) {
			return client.Session{}, apperrors.NotFound("Instructor")
		},
	}
	router := NewRouter()
	router.ShowLogin()

	_, err := api.Login(context.Background(), "nobody@motovasiya.az")
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("login err = %v, want NOT_FOUND", err)
	}

	// A failed login is not a transition.
	if router.Current() != ViewLogin {
		t.Errorf("router at %q, want login", router.Current())
	}
	if router.Session() != nil {
		t.Error("failed login produced a session")
	}
}
