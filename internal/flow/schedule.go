package flow

import (
	"time"

	"motovasiya/pkg/model"
)

// Schedule is the fixed booking template: the daily time slots offered and
// how many days ahead a lesson can be booked. It comes from configuration,
// never from booking data.
type Schedule struct {
	TimeSlots     []string
	LookaheadDays int
}

// Contains reports whether slot is part of the daily template.
func (s Schedule) Contains(slot string) bool {
	for _, t := range s.TimeSlots {
		if t == slot {
			return true
		}
	}
	return false
}

// Dates returns the selectable calendar dates starting with "from" itself,
// one per lookahead day, formatted as wire dates. Same-day bookings are
// allowed; the window closes LookaheadDays - 1 days out.
func (s Schedule) Dates(from time.Time) []string {
	dates := make([]string, 0, s.LookaheadDays)
	for i := 0; i < s.LookaheadDays; i++ {
		dates = append(dates, from.AddDate(0, 0, i).Format(model.DateLayout))
	}
	return dates
}

// ContainsDate reports whether date falls inside the booking window.
func (s Schedule) ContainsDate(from time.Time, date string) bool {
	for _, d := range s.Dates(from) {
		if d == date {
			return true
		}
	}
	return false
}
