package flow

import (
	"testing"
	"time"

	"motovasiya/pkg/client"
	"motovasiya/pkg/model"
)

func sessionFor(id string, admin bool) client.Session {
	return client.Session{
		Token: "tok-" + id,
		Instructor: model.Instructor{
			ID:      id,
			Name:    "Instructor " + id,
			IsAdmin: admin,
			Active:  true,
		},
	}
}

func TestRouter_Transitions(t *testing.T) {
	r := NewRouter()

	if r.Current() != ViewLanding {
		t.Fatalf("new router at %q, want landing", r.Current())
	}

	r.StartBooking()
	if r.Current() != ViewBooking {
		t.Fatalf("after StartBooking at %q, want booking", r.Current())
	}

	r.BookingSucceeded(model.Booking{
		Date:     "2026-09-01",
		TimeSlot: "10:00",
		Customer: model.Customer{Name: "Ali"},
	})
	if r.Current() != ViewSuccess {
		t.Fatalf("after BookingSucceeded at %q, want success", r.Current())
	}
	summary := r.Summary()
	if summary.CustomerName != "Ali" || summary.Date != "2026-09-01" || summary.TimeSlot != "10:00" {
		t.Errorf("summary = %+v", summary)
	}

	r.BackToLanding()
	if r.Current() != ViewLanding {
		t.Fatalf("after BackToLanding at %q, want landing", r.Current())
	}
	if r.Summary() != (SuccessSummary{}) {
		t.Errorf("summary survived BackToLanding: %+v", r.Summary())
	}
}

func TestRouter_LoginLogout(t *testing.T) {
	r := NewRouter()

	r.ShowLogin()
	if r.Current() != ViewLogin {
		t.Fatalf("after ShowLogin at %q, want login", r.Current())
	}

	r.LoggedIn(sessionFor("inst-1", false))
	if r.Current() != ViewAdmin {
		t.Fatalf("after LoggedIn at %q, want admin", r.Current())
	}
	if r.Session() == nil || r.Session().Instructor.ID != "inst-1" {
		t.Errorf("session = %+v", r.Session())
	}

	r.Logout()
	if r.Current() != ViewLanding {
		t.Fatalf("after Logout at %q, want landing", r.Current())
	}
	if r.Session() != nil {
		t.Error("session survived logout")
	}
}

func TestRouter_Tabs(t *testing.T) {
	r := NewRouter()

	r.LoggedIn(sessionFor("inst-1", false))
	tabs := r.Tabs()
	if len(tabs) != 1 || tabs[0] != TabRequests {
		t.Errorf("regular instructor tabs = %v, want [requests]", tabs)
	}
	if r.IsAdmin() {
		t.Error("regular instructor reported as admin")
	}

	r.LoggedIn(sessionFor("inst-2", true))
	tabs = r.Tabs()
	if len(tabs) != 3 || tabs[1] != TabInstructors || tabs[2] != TabBikes {
		t.Errorf("admin tabs = %v, want [requests instructors bikes]", tabs)
	}
	if !r.IsAdmin() {
		t.Error("admin not reported as admin")
	}
}

func TestRouter_VisibleBookings(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		{ID: "bk-1", InstructorID: "inst-1", CreatedAt: base},
		{ID: "bk-2", InstructorID: "inst-2", CreatedAt: base.Add(time.Hour)},
		{ID: "bk-3", InstructorID: "inst-1", CreatedAt: base.Add(2 * time.Hour)},
	}

	r := NewRouter()

	if got := r.VisibleBookings(bookings); got != nil {
		t.Errorf("logged-out visible bookings = %v, want nil", got)
	}

	r.LoggedIn(sessionFor("inst-1", false))
	own := r.VisibleBookings(bookings)
	if len(own) != 2 {
		t.Fatalf("regular instructor sees %d bookings, want 2", len(own))
	}
	if own[0].ID != "bk-3" || own[1].ID != "bk-1" {
		t.Errorf("bookings out of order: %s, %s", own[0].ID, own[1].ID)
	}

	r.LoggedIn(sessionFor("admin-1", true))
	all := r.VisibleBookings(bookings)
	if len(all) != 3 {
		t.Fatalf("admin sees %d bookings, want 3", len(all))
	}
	if all[0].ID != "bk-3" || all[1].ID != "bk-2" || all[2].ID != "bk-1" {
		t.Errorf("bookings out of order: %s, %s, %s", all[0].ID, all[1].ID, all[2].ID)
	}
}
