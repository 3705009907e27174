package flow

import (
	"errors"
	"testing"
	"time"

	"motovasiya/pkg/model"
)

func newTestDraft(t *testing.T) *Draft {
	t.Helper()
	d := NewDraft(testSchedule())
	d.now = func() time.Time { return mustParseDate(t, "2026-08-29") }
	return d
}

func validCustomer() model.Customer {
	return model.Customer{
		Name:     "Ali",
		Surname:  "Vali",
		Gender:   model.GenderMale,
		Age:      25,
		HeightCm: 180,
		Phone:    "+994501234567",
	}
}

func advanceToTimeChosen(t *testing.T, d *Draft) {
	t.Helper()
	if err := d.SelectMotorcycle("moto-1"); err != nil {
		t.Fatalf("SelectMotorcycle: %v", err)
	}
	if err := d.SelectInstructor("inst-1"); err != nil {
		t.Fatalf("SelectInstructor: %v", err)
	}
	if err := d.SelectDate("2026-09-01"); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	if err := d.SelectTime(nil, "10:00"); err != nil {
		t.Fatalf("SelectTime: %v", err)
	}
}

func TestDraft_FullProgression(t *testing.T) {
	d := newTestDraft(t)

	if d.Step() != StepEmpty {
		t.Fatalf("new draft at %v, want %v", d.Step(), StepEmpty)
	}

	advanceToTimeChosen(t, d)
	if d.Step() != StepTimeChosen {
		t.Fatalf("draft at %v, want %v", d.Step(), StepTimeChosen)
	}

	if err := d.SetCustomer(validCustomer()); err != nil {
		t.Fatalf("SetCustomer: %v", err)
	}
	if d.Step() != StepDetailsValid {
		t.Fatalf("draft at %v, want %v", d.Step(), StepDetailsValid)
	}
}

func TestDraft_RequestBody(t *testing.T) {
	d := newTestDraft(t)
	advanceToTimeChosen(t, d)
	if err := d.SetCustomer(validCustomer()); err != nil {
		t.Fatalf("SetCustomer: %v", err)
	}

	req, err := d.Request()
	if err != nil {
		t.Fatalf("Request: %v", err)
	}

	want := model.BookingRequest{
		MotorcycleID: "moto-1",
		InstructorID: "inst-1",
		Date:         "2026-09-01",
		TimeSlot:     "10:00",
		Customer:     validCustomer(),
	}
	if req != want {
		t.Errorf("Request() = %+v, want %+v", req, want)
	}
}

func TestDraft_RequestNotReady(t *testing.T) {
	d := newTestDraft(t)
	advanceToTimeChosen(t, d)

	if _, err := d.Request(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Request() before details err = %v, want ErrNotReady", err)
	}
}

func TestDraft_StepsGatedOnPredecessor(t *testing.T) {
	d := newTestDraft(t)

	if err := d.SelectInstructor("inst-1"); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("SelectInstructor on empty draft err = %v, want ErrOutOfOrder", err)
	}
	if err := d.SelectDate("2026-09-01"); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("SelectDate on empty draft err = %v, want ErrOutOfOrder", err)
	}
	if err := d.SelectTime(nil, "10:00"); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("SelectTime on empty draft err = %v, want ErrOutOfOrder", err)
	}
	if err := d.SetCustomer(validCustomer()); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("SetCustomer on empty draft err = %v, want ErrOutOfOrder", err)
	}
}

func TestDraft_DateChangeClearsTime(t *testing.T) {
	d := newTestDraft(t)
	advanceToTimeChosen(t, d)

	if err := d.SelectDate("2026-09-02"); err != nil {
		t.Fatalf("SelectDate: %v", err)
	}

	if d.TimeSlot() != "" {
		t.Errorf("time slot survived a date change: %q", d.TimeSlot())
	}
	if d.Step() != StepDateChosen {
		t.Errorf("draft at %v after date change, want %v", d.Step(), StepDateChosen)
	}
}

func TestDraft_InstructorChangeClearsDateAndTime(t *testing.T) {
	d := newTestDraft(t)
	advanceToTimeChosen(t, d)

	if err := d.SelectInstructor("inst-2"); err != nil {
		t.Fatalf("SelectInstructor: %v", err)
	}

	if d.Date() != "" || d.TimeSlot() != "" {
		t.Errorf("date/time survived instructor change: %q %q", d.Date(), d.TimeSlot())
	}
	if d.MotorcycleID() != "moto-1" {
		t.Errorf("bike cleared by instructor change: %q", d.MotorcycleID())
	}
	if d.Step() != StepInstructorChosen {
		t.Errorf("draft at %v, want %v", d.Step(), StepInstructorChosen)
	}
}

func TestDraft_BikeChangeClearsEverythingLater(t *testing.T) {
	d := newTestDraft(t)
	advanceToTimeChosen(t, d)
	if err := d.SetCustomer(validCustomer()); err != nil {
		t.Fatalf("SetCustomer: %v", err)
	}

	if err := d.SelectMotorcycle("moto-2"); err != nil {
		t.Fatalf("SelectMotorcycle: %v", err)
	}

	if d.InstructorID() != "" || d.Date() != "" || d.TimeSlot() != "" {
		t.Errorf("later selections survived bike change: %q %q %q",
			d.InstructorID(), d.Date(), d.TimeSlot())
	}
	if d.Customer() != (model.Customer{}) {
		t.Errorf("customer survived bike change: %+v", d.Customer())
	}
	if d.Step() != StepBikeChosen {
		t.Errorf("draft at %v, want %v", d.Step(), StepBikeChosen)
	}
}

func TestDraft_BusySlotRejected(t *testing.T) {
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

	bookings := []model.Booking{
		{InstructorID: "inst-1", Date: "2026-09-01", TimeSlot: "10:00", Status: model.StatusPending},
	}

	if err := d.SelectTime(bookings, "10:00"); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("SelectTime on busy slot err = %v, want ErrSlotTaken", err)
	}
	if d.Step() != StepDateChosen {
		t.Errorf("rejected slot advanced the draft to %v", d.Step())
	}

	// The neighbouring slot is free.
	if err := d.SelectTime(bookings, "11:00"); err != nil {
		t.Errorf("SelectTime on free slot err = %v", err)
	}
}

func TestDraft_CancelledSlotSelectable(t *testing.T) {
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

	bookings := []model.Booking{
		{InstructorID: "inst-1", Date: "2026-09-01", TimeSlot: "10:00", Status: model.StatusCancelled},
	}

	if err := d.SelectTime(bookings, "10:00"); err != nil {
		t.Errorf("SelectTime on cancelled slot err = %v, want nil", err)
	}
}

func TestDraft_UnknownSlotRejected(t *testing.T) {
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

	if err := d.SelectTime(nil, "13:00"); !errors.Is(err, ErrUnknownSlot) {
		t.Errorf("SelectTime outside template err = %v, want ErrUnknownSlot", err)
	}
}

func TestDraft_DateOutsideWindowRejected(t *testing.T) {
	d := newTestDraft(t)
	if err := d.SelectMotorcycle("moto-1"); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectInstructor("inst-1"); err != nil {
		t.Fatal(err)
	}

	if err := d.SelectDate("2027-01-01"); !errors.Is(err, ErrDateOutOfWindow) {
		t.Errorf("SelectDate outside window err = %v, want ErrDateOutOfWindow", err)
	}
	if err := d.SelectDate("not-a-date"); err == nil {
		t.Error("SelectDate accepted a malformed date")
	}
}

func TestDraft_SameDayBookingAllowed(t *testing.T) {
	d := newTestDraft(t)
	if err := d.SelectMotorcycle("moto-1"); err != nil {
		t.Fatal(err)
	}
	if err := d.SelectInstructor("inst-1"); err != nil {
		t.Fatal(err)
	}

	// The window opens on the current day, not the next one.
	if err := d.SelectDate("2026-08-29"); err != nil {
		t.Errorf("SelectDate(today) err = %v, want nil", err)
	}
	if d.Step() != StepDateChosen {
		t.Errorf("step = %v, want StepDateChosen", d.Step())
	}
}

func TestDraft_InvalidCustomerBlocks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Customer)
	}{
		{"under-age rider", func(c *model.Customer) { c.Age = 15 }},
		{"missing name", func(c *model.Customer) { c.Name = "" }},
		{"unknown gender", func(c *model.Customer) { c.Gender = "Unknown" }},
		{"zero height", func(c *model.Customer) { c.HeightCm = 0 }},
		{"local phone format", func(c *model.Customer) { c.Phone = "0501234567" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDraft(t)
			advanceToTimeChosen(t, d)

			customer := validCustomer()
			tt.mutate(&customer)

			if err := d.SetCustomer(customer); err == nil {
				t.Fatal("SetCustomer accepted invalid details")
			}
			if d.Step() != StepTimeChosen {
				t.Errorf("invalid details moved draft to %v", d.Step())
			}
		})
	}
}

func TestDraft_ResetClearsEverything(t *testing.T) {
	d := newTestDraft(t)
	advanceToTimeChosen(t, d)
	if err := d.SetCustomer(validCustomer()); err != nil {
		t.Fatal(err)
	}

	gen := d.generation
	d.Reset()

	if d.Step() != StepEmpty {
		t.Errorf("reset draft at %v, want %v", d.Step(), StepEmpty)
	}
	if d.MotorcycleID() != "" || d.InstructorID() != "" || d.Date() != "" || d.TimeSlot() != "" {
		t.Error("reset left selections behind")
	}
	if d.generation != gen+1 {
		t.Errorf("reset generation = %d, want %d", d.generation, gen+1)
	}
}
