package client

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/logger"
	"motovasiya/pkg/model"
)

// LocalAPI is an in-memory implementation of the collaborator API. It keeps
// the same visible semantics as the REST backend, including slot exclusivity
// and active-only login, so the booking flow can run without a server.
type LocalAPI struct {
	mu          sync.RWMutex
	path        string
	log         *logger.Logger
	instructors []model.Instructor
	motorcycles []model.Motorcycle
	bookings    []model.Booking
	session     *Session
}

type localSnapshot struct {
	Instructors []model.Instructor `json:"instructors"`
	Motorcycles []model.Motorcycle `json:"motorcycles"`
	Bookings    []model.Booking    `json:"bookings"`
}

var _ API = (*LocalAPI)(nil)

// NewLocalAPI returns a store seeded with a small demo fleet and roster.
func NewLocalAPI() *LocalAPI {
	now := time.Now().UTC()
	return &LocalAPI{
		instructors: []model.Instructor{
			{
				ID:        uuid.NewString(),
				Name:      "Narmin",
				Surname:   "Aliyeva",
				Email:     "narmin@motovasiya.az",
				Bio:       "Head instructor. Eleven seasons of teaching on the track.",
				Photo:     "https://cdn.motovasiya.az/instructors/narmin.jpg",
				Active:    true,
				IsAdmin:   true,
				CreatedAt: now,
			},
			{
				ID:        uuid.NewString(),
				Name:      "Rashad",
				Surname:   "Mammadov",
				Email:     "rashad@motovasiya.az",
				Bio:       "Specializes in first-time riders and low-speed control.",
				Photo:     "https://cdn.motovasiya.az/instructors/rashad.jpg",
				Active:    true,
				CreatedAt: now,
			},
		},
		motorcycles: []model.Motorcycle{
			{
				ID:          uuid.NewString(),
				Name:        "Honda CB300R",
				Image:       "https://cdn.motovasiya.az/bikes/cb300r.jpg",
				Description: "Light naked bike, forgiving for beginners.",
				Active:      true,
				CreatedAt:   now,
			},
			{
				ID:          uuid.NewString(),
				Name:        "Yamaha MT-07",
				Image:       "https://cdn.motovasiya.az/bikes/mt07.jpg",
				Description: "Mid-size twin for riders past the basics.",
				Active:      true,
				CreatedAt:   now,
			},
		},
	}
}

// NewEmptyLocalAPI returns a store with no seed data, for tests.
func NewEmptyLocalAPI() *LocalAPI {
	return &LocalAPI{}
}

// NewLocalAPIFromFile loads store contents from a JSON snapshot at path,
// seeding the default fixtures when the file does not exist yet. Mutations
// rewrite the snapshot; write failures keep the in-memory state and are
// reported through log.
func NewLocalAPIFromFile(path string, log *logger.Logger) (*LocalAPI, error) {
	if log == nil {
		log = logger.New(logger.Config{Service: "local-store"})
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := NewLocalAPI()
		s.path = path
		s.log = log
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	var snap localSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &LocalAPI{
		path:        path,
		log:         log,
		instructors: snap.Instructors,
		motorcycles: snap.Motorcycles,
		bookings:    snap.Bookings,
	}, nil
}

// persistLocked writes the snapshot; callers must hold mu (or own the store
// exclusively). A store without a path keeps everything in memory.
func (s *LocalAPI) persistLocked() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(localSnapshot{
		Instructors: s.instructors,
		Motorcycles: s.motorcycles,
		Bookings:    s.bookings,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// persist is persistLocked for mutation paths: the in-memory change already
// happened, so a snapshot failure is logged rather than returned.
func (s *LocalAPI) persist() {
	if err := s.persistLocked(); err != nil && s.log != nil {
		s.log.Error("Failed to persist local store snapshot", "path", s.path, "error", err)
	}
}

func (s *LocalAPI) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Instructor, 0, len(s.instructors))
	for _, in := range s.instructors {
		if in.Active {
			out = append(out, in)
		}
	}
	return out, nil
}

func (s *LocalAPI) ListAllInstructors(ctx context.Context) ([]model.Instructor, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Instructor(nil), s.instructors...), nil
}

func (s *LocalAPI) ListMotorcycles(ctx context.Context) ([]model.Motorcycle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Motorcycle, 0, len(s.motorcycles))
	for _, m := range s.motorcycles {
		if m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *LocalAPI) ListAllMotorcycles(ctx context.Context) ([]model.Motorcycle, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Motorcycle(nil), s.motorcycles...), nil
}

func (s *LocalAPI) ListBookings(ctx context.Context) ([]model.Booking, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]model.Booking(nil), s.bookings...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *LocalAPI) CreateBooking(ctx context.Context, req model.BookingRequest) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.InstructorID == req.InstructorID &&
			b.Date == req.Date &&
			b.TimeSlot == req.TimeSlot &&
			b.Status != model.StatusCancelled {
			return model.Booking{}, apperrors.Conflict("time slot is already booked for this instructor")
		}
	}

	booking := model.Booking{
		ID:           uuid.NewString(),
		MotorcycleID: req.MotorcycleID,
		InstructorID: req.InstructorID,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		Customer:     req.Customer,
		Status:       model.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	s.bookings = append(s.bookings, booking)
	s.persist()
	return booking, nil
}

func (s *LocalAPI) UpdateBookingStatus(ctx context.Context, id string, status string) (model.Booking, error) {
	if err := s.requireSession(); err != nil {
		return model.Booking{}, err
	}
	if status != model.StatusConfirmed && status != model.StatusCancelled {
		return model.Booking{}, apperrors.InvalidInput("status must be confirmed or cancelled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if s.bookings[i].Status == model.StatusCancelled {
			return model.Booking{}, apperrors.Conflict("cancelled bookings cannot change status")
		}
		s.bookings[i].Status = status
		s.persist()
		return s.bookings[i], nil
	}
	return model.Booking{}, apperrors.NotFoundWithID("Booking", id)
}

func (s *LocalAPI) DeleteBooking(ctx context.Context, id string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			s.persist()
			return nil
		}
	}
	return apperrors.NotFoundWithID("Booking", id)
}

func (s *LocalAPI) CreateInstructor(ctx context.Context, instructor model.Instructor) (model.Instructor, error) {
	if err := s.requireSession(); err != nil {
		return model.Instructor{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(instructor.Email))
	for _, in := range s.instructors {
		if strings.EqualFold(in.Email, email) {
			return model.Instructor{}, apperrors.Conflict("instructor with this email already exists")
		}
	}

	instructor.ID = uuid.NewString()
	instructor.Email = email
	instructor.Active = true
	instructor.CreatedAt = time.Now().UTC()
	s.instructors = append(s.instructors, instructor)
	s.persist()
	return instructor, nil
}

func (s *LocalAPI) UpdateInstructor(ctx context.Context, id string, updates model.InstructorUpdate) (model.Instructor, error) {
	if err := s.requireSession(); err != nil {
		return model.Instructor{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.instructors {
		if s.instructors[i].ID != id {
			continue
		}
		in := &s.instructors[i]
		if updates.Name != "" {
			in.Name = updates.Name
		}
		if updates.Surname != "" {
			in.Surname = updates.Surname
		}
		if updates.Email != "" {
			in.Email = strings.ToLower(strings.TrimSpace(updates.Email))
		}
		if updates.Bio != "" {
			in.Bio = updates.Bio
		}
		if updates.Photo != "" {
			in.Photo = updates.Photo
		}
		if updates.Active != nil {
			in.Active = *updates.Active
		}
		if updates.IsAdmin != nil {
			in.IsAdmin = *updates.IsAdmin
		}
		s.persist()
		return *in, nil
	}
	return model.Instructor{}, apperrors.NotFoundWithID("Instructor", id)
}

func (s *LocalAPI) ToggleInstructorStatus(ctx context.Context, id string) (model.Instructor, error) {
	if err := s.requireSession(); err != nil {
		return model.Instructor{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.instructors {
		if s.instructors[i].ID == id {
			s.instructors[i].Active = !s.instructors[i].Active
			s.persist()
			return s.instructors[i], nil
		}
	}
	return model.Instructor{}, apperrors.NotFoundWithID("Instructor", id)
}

func (s *LocalAPI) DeleteInstructor(ctx context.Context, id string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.instructors {
		if s.instructors[i].ID == id {
			s.instructors = append(s.instructors[:i], s.instructors[i+1:]...)
			s.persist()
			return nil
		}
	}
	return apperrors.NotFoundWithID("Instructor", id)
}

func (s *LocalAPI) CreateMotorcycle(ctx context.Context, motorcycle model.Motorcycle) (model.Motorcycle, error) {
	if err := s.requireSession(); err != nil {
		return model.Motorcycle{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	motorcycle.ID = uuid.NewString()
	motorcycle.Active = true
	motorcycle.CreatedAt = time.Now().UTC()
	s.motorcycles = append(s.motorcycles, motorcycle)
	s.persist()
	return motorcycle, nil
}

func (s *LocalAPI) DeleteMotorcycle(ctx context.Context, id string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.motorcycles {
		if s.motorcycles[i].ID == id {
			s.motorcycles = append(s.motorcycles[:i], s.motorcycles[i+1:]...)
			s.persist()
			return nil
		}
	}
	return apperrors.NotFoundWithID("Motorcycle", id)
}

// Login matches the REST backend: lookup by email among active instructors,
// 404 otherwise. The token is an opaque session id, not a real JWT.
func (s *LocalAPI) Login(ctx context.Context, email string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, in := range s.instructors {
		if strings.EqualFold(in.Email, email) && in.Active {
			session := Session{Token: uuid.NewString(), Instructor: in}
			s.session = &session
			return session, nil
		}
	}
	return Session{}, apperrors.NotFound("Instructor")
}

// Logout drops the current session.
func (s *LocalAPI) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

func (s *LocalAPI) requireSession() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return apperrors.Unauthorized("login required")
	}
	return nil
}
