package flow

import (
	"sort"

	"motovasiya/pkg/client"
	"motovasiya/pkg/model"
)

// View is one of the top-level screens.
type View string

const (
	ViewLanding View = "landing"
	ViewBooking View = "booking"
	ViewSuccess View = "success"
	ViewLogin   View = "login"
	ViewAdmin   View = "admin"
)

// Admin dashboard tabs. Requests is visible to every logged-in instructor;
// the other two require admin rights.
const (
	TabRequests    = "requests"
	TabInstructors = "instructors"
	TabBikes       = "bikes"
)

// SuccessSummary is what the success screen shows after a booking lands.
type SuccessSummary struct {
	CustomerName string
	Date         string
	TimeSlot     string
}

// Router owns the current view and the logged-in session. One instance per
// user surface; not safe for concurrent use.
type Router struct {
	current View
	session *client.Session
	summary SuccessSummary
}

func NewRouter() *Router {
	return &Router{current: ViewLanding}
}

func (r *Router) Current() View { return r.current }

// Session returns the logged-in session, or nil when logged out.
func (r *Router) Session() *client.Session { return r.session }

func (r *Router) Summary() SuccessSummary { return r.summary }

// StartBooking enters the wizard from the landing screen.
func (r *Router) StartBooking() {
	r.current = ViewBooking
}

// BookingSucceeded moves to the success screen carrying the confirmation
// details.
func (r *Router) BookingSucceeded(booking model.Booking) {
	r.summary = SuccessSummary{
		CustomerName: booking.Customer.Name,
		Date:         booking.Date,
		TimeSlot:     booking.TimeSlot,
	}
	r.current = ViewSuccess
}

// BackToLanding leaves the wizard or the success screen.
func (r *Router) BackToLanding() {
	r.summary = SuccessSummary{}
	r.current = ViewLanding
}

// ShowLogin enters the instructor login screen.
func (r *Router) ShowLogin() {
	r.current = ViewLogin
}

// LoggedIn stores the session and enters the admin dashboard.
func (r *Router) LoggedIn(session client.Session) {
	r.session = &session
	r.current = ViewAdmin
}

// Logout clears the session and returns to the landing screen.
func (r *Router) Logout() {
	r.session = nil
	r.current = ViewLanding
}

// IsAdmin reports whether the logged-in instructor has admin rights.
func (r *Router) IsAdmin() bool {
	return r.session != nil && r.session.Instructor.IsAdmin
}

// Tabs lists the admin dashboard tabs visible to the current session.
func (r *Router) Tabs() []string {
	tabs := []string{TabRequests}
	if r.IsAdmin() {
		tabs = append(tabs, TabInstructors, TabBikes)
	}
	return tabs
}

// VisibleBookings filters the request list for the current session and
// orders it most-recent-first. Admins see every booking; a regular
// instructor sees only their own.
func (r *Router) VisibleBookings(bookings []model.Booking) []model.Booking {
	if r.session == nil {
		return nil
	}

	out := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if r.IsAdmin() || b.InstructorID == r.session.Instructor.ID {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
