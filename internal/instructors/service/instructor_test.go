package service

import (
	"context"
	"testing"
	"time"

	instructorserrors "motovasiya/internal/instructors/errors"
	"motovasiya/internal/instructors/validator"
	"motovasiya/pkg/config"
	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/logger"
	"motovasiya/pkg/model"
)

type mockInstructorRepository struct {
	createFunc      func(ctx context.Context, instructor *model.Instructor) error
	findByIDFunc    func(ctx context.Context, id string) (*model.Instructor, error)
	findByEmailFunc func(ctx context.Context, email string) (*model.Instructor, error)
	findAllFunc     func(ctx context.Context, activeOnly bool) ([]*model.Instructor, error)
	updateFunc      func(ctx context.Context, id string, instructor *model.Instructor) error
	deleteFunc      func(ctx context.Context, id string) error
}

func (m *mockInstructorRepository) Create(ctx context.Context, instructor *model.Instructor) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, instructor)
	}
	return nil
}

func (m *mockInstructorRepository) FindByID(ctx context.Context, id string) (*model.Instructor, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, instructorserrors.ErrNotFound
}

func (m *mockInstructorRepository) FindByEmail(ctx context.Context, email string) (*model.Instructor, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, instructorserrors.ErrNotFound
}

func (m *mockInstructorRepository) FindAll(ctx context.Context, activeOnly bool) ([]*model.Instructor, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockInstructorRepository) Update(ctx context.Context, id string, instructor *model.Instructor) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, instructor)
	}
	return nil
}

func (m *mockInstructorRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockInstructorRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Service: "test"}),
	}
}

func newTestService(repo *mockInstructorRepository) InstructorService {
	cfg := testConfig()
	return NewInstructorService(repo, validator.NewInstructorValidator(cfg.Log), cfg)
}

func storedInstructor() *model.Instructor {
	return &model.Instructor{
		ID:        "inst-1",
		Name:      "Narmin",
		Surname:   "Aliyeva",
		Email:     "narmin@motovasiya.az",
		Bio:       "Head instructor.",
		Photo:     "https://cdn.motovasiya.az/instructors/narmin.jpg",
		Active:    true,
		IsAdmin:   true,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUpdateInstructor_AbsentFieldsUntouched(t *testing.T) {
	var saved *model.Instructor
	repo := &mockInstructorRepository{
		findByIDFunc: func(_ context.Context, id string) (*model.Instructor, error) {
			return storedInstructor(), nil
		},
		updateFunc: func(_ context.Context, _ string, instructor *model.Instructor) error {
			saved = instructor
			return nil
		},
	}
	svc := newTestService(repo)

	updated, err := svc.Update(context.Background(), "inst-1", &model.InstructorUpdate{
		Bio: "Now also runs the advanced cornering course.",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if saved == nil {
		t.Fatal("repository never received the merged instructor")
	}

	if updated.Bio != "Now also runs the advanced cornering course." {
		t.Errorf("bio = %q, want the new value", updated.Bio)
	}
	want := storedInstructor()
	if updated.Name != want.Name || updated.Surname != want.Surname {
		t.Errorf("name = %q %q, want %q %q untouched", updated.Name, updated.Surname, want.Name, want.Surname)
	}
	if updated.Email != want.Email {
		t.Errorf("email = %q, want %q untouched", updated.Email, want.Email)
	}
	if updated.Photo != want.Photo {
		t.Errorf("photo = %q, want %q untouched", updated.Photo, want.Photo)
	}
	if !updated.Active || !updated.IsAdmin {
		t.Errorf("active = %v, isAdmin = %v, want both true untouched", updated.Active, updated.IsAdmin)
	}
}

func TestUpdateInstructor_PointerFalseIsNotUnset(t *testing.T) {
	repo := &mockInstructorRepository{
		findByIDFunc: func(_ context.Context, id string) (*model.Instructor, error) {
			return storedInstructor(), nil
		},
	}
	svc := newTestService(repo)

	// A nil pointer leaves the flag alone; a pointer to false flips it off.
	f := false
	updated, err := svc.Update(context.Background(), "inst-1", &model.InstructorUpdate{
		Active: &f,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Active {
		t.Error("active = true, want false after explicit pointer")
	}
	if !updated.IsAdmin {
		t.Error("isAdmin = false, want true untouched by nil pointer")
	}

	updated, err = svc.Update(context.Background(), "inst-1", &model.InstructorUpdate{
		IsAdmin: &f,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.IsAdmin {
		t.Error("isAdmin = true, want false after explicit pointer")
	}
	if !updated.Active {
		t.Error("active = false, want true untouched by nil pointer")
	}
}

func TestUpdateInstructor_SanitizesMergedFields(t *testing.T) {
	repo := &mockInstructorRepository{
		findByIDFunc: func(_ context.Context, id string) (*model.Instructor, error) {
			return storedInstructor(), nil
		},
	}
	svc := newTestService(repo)

	updated, err := svc.Update(context.Background(), "inst-1", &model.InstructorUpdate{
		Email: "NEW@MotoVasiya.AZ",
		Name:  "  Leyla  ",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Email != "new@motovasiya.az" {
		t.Errorf("email = %q, want lowercased", updated.Email)
	}
	if updated.Name != "Leyla" {
		t.Errorf("name = %q, want trimmed", updated.Name)
	}
}

func TestUpdateInstructor_NotFound(t *testing.T) {
	svc := newTestService(&mockInstructorRepository{})

	_, err := svc.Update(context.Background(), "missing", &model.InstructorUpdate{Bio: "x"})
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestToggleInstructorStatus(t *testing.T) {
	stored := storedInstructor()
	repo := &mockInstructorRepository{
		findByIDFunc: func(_ context.Context, id string) (*model.Instructor, error) {
			return stored, nil
		},
	}
	svc := newTestService(repo)

	toggled, err := svc.ToggleStatus(context.Background(), "inst-1")
	if err != nil {
		t.Fatalf("ToggleStatus failed: %v", err)
	}
	if toggled.Active {
		t.Error("active = true, want false after toggle")
	}
}

func TestCreateInstructor_DuplicateEmail(t *testing.T) {
	repo := &mockInstructorRepository{
		createFunc: func(context.Context, *model.Instructor) error {
			return instructorserrors.ErrDuplicateEmail
		},
	}
	svc := newTestService(repo)

	in := storedInstructor()
	in.ID = ""
	if err := svc.Create(context.Background(), in); !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Errorf("err = %v, want CONFLICT", err)
	}
}
