package flow

import (
	"context"
	"sync"

	"motovasiya/pkg/client"
	"motovasiya/pkg/model"
)

// AppState is the explicitly owned application state behind the booking
// surface. Every mutation goes through a named operation; nothing else holds
// a reference to the slices inside.
type AppState struct {
	mu sync.RWMutex

	instructors []model.Instructor
	motorcycles []model.Motorcycle
	bookings    []model.Booking

	instructorsLoaded bool
	motorcyclesLoaded bool
}

func NewAppState() *AppState {
	return &AppState{}
}

// Load fetches instructors and motorcycles in parallel. The wizard is not
// usable until both complete; completion order does not matter.
func (s *AppState) Load(ctx context.Context, api client.API) error {
	var wg sync.WaitGroup
	var instructors []model.Instructor
	var motorcycles []model.Motorcycle
	var instErr, motoErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		instructors, instErr = api.ListInstructors(ctx)
	}()
	go func() {
		defer wg.Done()
		motorcycles, motoErr = api.ListMotorcycles(ctx)
	}()
	wg.Wait()

	if instErr != nil {
		return instErr
	}
	if motoErr != nil {
		return motoErr
	}

	s.SetInstructors(instructors)
	s.SetMotorcycles(motorcycles)
	return nil
}

// Ready reports whether both initial loads have completed.
func (s *AppState) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instructorsLoaded && s.motorcyclesLoaded
}

func (s *AppState) SetInstructors(instructors []model.Instructor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instructors = append([]model.Instructor(nil), instructors...)
	s.instructorsLoaded = true
}

func (s *AppState) SetMotorcycles(motorcycles []model.Motorcycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.motorcycles = append([]model.Motorcycle(nil), motorcycles...)
	s.motorcyclesLoaded = true
}

func (s *AppState) SetBookings(bookings []model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append([]model.Booking(nil), bookings...)
}

func (s *AppState) Instructors() []model.Instructor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Instructor(nil), s.instructors...)
}

func (s *AppState) Motorcycles() []model.Motorcycle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Motorcycle(nil), s.motorcycles...)
}

func (s *AppState) Bookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Booking(nil), s.bookings...)
}

// InstructorByID returns the loaded instructor with the given id.
func (s *AppState) InstructorByID(id string) (model.Instructor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, in := range s.instructors {
		if in.ID == id {
			return in, true
		}
	}
	return model.Instructor{}, false
}

// MotorcycleByID returns the loaded motorcycle with the given id.
func (s *AppState) MotorcycleByID(id string) (model.Motorcycle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.motorcycles {
		if m.ID == id {
			return m, true
		}
	}
	return model.Motorcycle{}, false
}

// AddBooking records a booking the backend just accepted.
func (s *AppState) AddBooking(b model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

// UpdateBooking replaces the stored booking with the same id.
func (s *AppState) UpdateBooking(b model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == b.ID {
			s.bookings[i] = b
			return
		}
	}
}

// RemoveBooking drops the booking with the given id.
func (s *AppState) RemoveBooking(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return
		}
	}
}

// RemoveInstructor drops the instructor with the given id.
func (s *AppState) RemoveInstructor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.instructors {
		if s.instructors[i].ID == id {
			s.instructors = append(s.instructors[:i], s.instructors[i+1:]...)
			return
		}
	}
}

// RemoveMotorcycle drops the motorcycle with the given id.
func (s *AppState) RemoveMotorcycle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.motorcycles {
		if s.motorcycles[i].ID == id {
			s.motorcycles = append(s.motorcycles[:i], s.motorcycles[i+1:]...)
			return
		}
	}
}

// UpsertInstructor replaces the stored instructor with the same id, or
// appends it when new.
func (s *AppState) UpsertInstructor(in model.Instructor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.instructors {
		if s.instructors[i].ID == in.ID {
			s.instructors[i] = in
			return
		}
	}
	s.instructors = append(s.instructors, in)
}

// UpsertMotorcycle replaces the stored motorcycle with the same id, or
// appends it when new.
func (s *AppState) UpsertMotorcycle(m model.Motorcycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.motorcycles {
		if s.motorcycles[i].ID == m.ID {
			s.motorcycles[i] = m
			return
		}
	}
	s.motorcycles = append(s.motorcycles, m)
}
