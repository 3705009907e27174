package flow

import "motovasiya/pkg/model"

// IsSlotBusy reports whether an instructor already has a live booking at the
// given date and time slot. Cancelled bookings do not occupy their slot.
// Without a chosen instructor no slot can be busy.
func IsSlotBusy(bookings []model.Booking, date, timeSlot, instructorID string) bool {
	if instructorID == "" {
		return false
	}
	for _, b := range bookings {
		if b.Date == date &&
			b.TimeSlot == timeSlot &&
			b.InstructorID == instructorID &&
			b.Status != model.StatusCancelled {
			return true
		}
	}
	return false
}

// BusySlots returns the template slots already taken for an instructor on a
// date, in template order.
func BusySlots(bookings []model.Booking, schedule Schedule, date, instructorID string) []string {
	var busy []string
	for _, slot := range schedule.TimeSlots {
		if IsSlotBusy(bookings, date, slot, instructorID) {
			busy = append(busy, slot)
		}
	}
	return busy
}
