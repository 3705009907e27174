package service

import (
	"context"
	"errors"
	"strings"

	instructorserrors "motovasiya/internal/instructors/errors"
	"motovasiya/internal/instructors/repository"
	"motovasiya/internal/instructors/validator"
	"motovasiya/pkg/config"
	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/model"
	"motovasiya/pkg/sanitizer"
)

type InstructorService interface {
	Create(ctx context.Context, instructor *model.Instructor) error
	GetByID(ctx context.Context, id string) (*model.Instructor, error)
	GetByEmail(ctx context.Context, email string) (*model.Instructor, error)
	GetAll(ctx context.Context, includeInactive bool) ([]*model.Instructor, error)
	Update(ctx context.Context, id string, updates *model.InstructorUpdate) (*model.Instructor, error)
	ToggleStatus(ctx context.Context, id string) (*model.Instructor, error)
	Delete(ctx context.Context, id string) error
}

type instructorService struct {
	repo      repository.InstructorRepository
	validator *validator.InstructorValidator
	cfg       *config.Config
}

func NewInstructorService(
	repo repository.InstructorRepository,
	validator *validator.InstructorValidator,
	cfg *config.Config,
) InstructorService {
	return &instructorService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *instructorService) Create(ctx context.Context, instructor *model.Instructor) error {
	s.sanitize(instructor)
	// New instructors always start active; deactivation is a separate
	// admin action.
	instructor.Active = true

	if err := s.validator.Validate(instructor); err != nil {
		s.cfg.Log.Warn("Instructor validation failed", "error", err)
		return apperrors.Validation("Instructor validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, instructor); err != nil {
		if errors.Is(err, instructorserrors.ErrDuplicateEmail) {
			return apperrors.Conflict("An instructor with this email already exists")
		}
		s.cfg.Log.Error("Failed to create instructor", "error", err)
		return apperrors.Internal("Failed to create instructor", err)
	}

	s.cfg.Log.Info("Instructor created successfully", "id", instructor.ID, "email", instructor.Email)
	return nil
}

func (s *instructorService) GetByID(ctx context.Context, id string) (*model.Instructor, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Instructor ID cannot be empty")
	}

	instructor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translateLookupError(err, id)
	}
	return instructor, nil
}

func (s *instructorService) GetByEmail(ctx context.Context, email string) (*model.Instructor, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.InvalidInput("Email cannot be empty")
	}

	instructor, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, instructorserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Instructor")
		}
		return nil, apperrors.Internal("Failed to retrieve instructor", err)
	}
	return instructor, nil
}

func (s *instructorService) GetAll(ctx context.Context, includeInactive bool) ([]*model.Instructor, error) {
	instructors, err := s.repo.FindAll(ctx, !includeInactive)
	if err != nil {
		s.cfg.Log.Error("Failed to list instructors", "error", err)
		return nil, apperrors.Internal("Failed to retrieve instructors", err)
	}
	return instructors, nil
}

func (s *instructorService) Update(ctx context.Context, id string, updates *model.InstructorUpdate) (*model.Instructor, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Instructor ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translateLookupError(err, id)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Instructor update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validator.Validate(merged); err != nil {
		return nil, apperrors.Validation("Instructor validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, instructorserrors.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("An instructor with this email already exists")
		}
		s.cfg.Log.Error("Failed to update instructor", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update instructor", err)
	}

	s.cfg.Log.Info("Instructor updated successfully", "id", id)
	return merged, nil
}

func (s *instructorService) ToggleStatus(ctx context.Context, id string) (*model.Instructor, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Instructor ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translateLookupError(err, id)
	}

	existing.Active = !existing.Active
	if err := s.repo.Update(ctx, id, existing); err != nil {
		s.cfg.Log.Error("Failed to toggle instructor status", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to toggle instructor status", err)
	}

	s.cfg.Log.Info("Instructor status toggled", "id", id, "active", existing.Active)
	return existing, nil
}

func (s *instructorService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Instructor ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, instructorserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Instructor", id)
		}
		if errors.Is(err, instructorserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid instructor ID format")
		}
		s.cfg.Log.Error("Failed to delete instructor", "id", id, "error", err)
		return apperrors.Internal("Failed to delete instructor", err)
	}

	s.cfg.Log.Info("Instructor deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *instructorService) sanitize(in *model.Instructor) {
	in.Name = sanitizer.NormalizeName(in.Name)
	in.Surname = sanitizer.NormalizeName(in.Surname)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Bio = sanitizer.TrimAndNormalize(in.Bio)
	in.Photo = strings.TrimSpace(in.Photo)
}

func (s *instructorService) mergeUpdates(existing *model.Instructor, updates *model.InstructorUpdate) *model.Instructor {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Surname != "" {
		merged.Surname = updates.Surname
	}
	if updates.Email != "" {
		merged.Email = updates.Email
	}
	if updates.Bio != "" {
		merged.Bio = updates.Bio
	}
	if updates.Photo != "" {
		merged.Photo = updates.Photo
	}
	if updates.Active != nil {
		merged.Active = *updates.Active
	}
	if updates.IsAdmin != nil {
		merged.IsAdmin = *updates.IsAdmin
	}

	return &merged
}

func (s *instructorService) translateLookupError(err error, id string) error {
	if errors.Is(err, instructorserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Instructor", id)
	}
	if errors.Is(err, instructorserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid instructor ID format")
	}
	return apperrors.Internal("Failed to retrieve instructor", err)
}
