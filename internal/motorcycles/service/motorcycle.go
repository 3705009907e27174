package service

import (
	"context"
	"errors"

	motorcycleserrors "motovasiya/internal/motorcycles/errors"
	"motovasiya/internal/motorcycles/repository"
	"motovasiya/internal/motorcycles/validator"
	"motovasiya/pkg/config"
	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/model"
	"motovasiya/pkg/sanitizer"
)

type MotorcycleService interface {
	Create(ctx context.Context, motorcycle *model.Motorcycle) error
	GetByID(ctx context.Context, id string) (*model.Motorcycle, error)
	GetAll(ctx context.Context, includeInactive bool) ([]*model.Motorcycle, error)
	Delete(ctx context.Context, id string) error
}

type motorcycleService struct {
	repo      repository.MotorcycleRepository
	validator *validator.MotorcycleValidator
	cfg       *config.Config
}

func NewMotorcycleService(
	repo repository.MotorcycleRepository,
	validator *validator.MotorcycleValidator,
	cfg *config.Config,
) MotorcycleService {
	return &motorcycleService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *motorcycleService) Create(ctx context.Context, motorcycle *model.Motorcycle) error {
	motorcycle.Name = sanitizer.TrimAndNormalize(motorcycle.Name)
	motorcycle.Description = sanitizer.TrimAndNormalize(motorcycle.Description)
	motorcycle.Active = true

	if err := s.validator.Validate(motorcycle); err != nil {
		s.cfg.Log.Warn("Motorcycle validation failed", "error", err)
		return apperrors.Validation("Motorcycle validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, motorcycle); err != nil {
		s.cfg.Log.Error("Failed to create motorcycle", "error", err)
		return apperrors.Internal("Failed to create motorcycle", err)
	}

	s.cfg.Log.Info("Motorcycle created successfully", "id", motorcycle.ID, "name", motorcycle.Name)
	return nil
}

func (s *motorcycleService) GetByID(ctx context.Context, id string) (*model.Motorcycle, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Motorcycle ID cannot be empty")
	}

	motorcycle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, motorcycleserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Motorcycle", id)
		}
		if errors.Is(err, motorcycleserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid motorcycle ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve motorcycle", err)
	}

	return motorcycle, nil
}

func (s *motorcycleService) GetAll(ctx context.Context, includeInactive bool) ([]*model.Motorcycle, error) {
	motorcycles, err := s.repo.FindAll(ctx, !includeInactive)
	if err != nil {
		s.cfg.Log.Error("Failed to list motorcycles", "error", err)
		return nil, apperrors.Internal("Failed to retrieve motorcycles", err)
	}
	return motorcycles, nil
}

func (s *motorcycleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Motorcycle ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, motorcycleserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Motorcycle", id)
		}
		if errors.Is(err, motorcycleserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid motorcycle ID format")
		}
		s.cfg.Log.Error("Failed to delete motorcycle", "id", id, "error", err)
		return apperrors.Internal("Failed to delete motorcycle", err)
	}

	s.cfg.Log.Info("Motorcycle deleted successfully", "id", id)
	return nil
}
