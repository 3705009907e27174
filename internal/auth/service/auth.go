package service

import (
	"context"
	"time"

	instructorsservice "motovasiya/internal/instructors/service"
	"motovasiya/pkg/config"
	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/middleware"
	"motovasiya/pkg/model"

	"github.com/golang-jwt/jwt/v5"
)

// LoginResult is what a successful email login returns: a bearer token and
// the instructor it belongs to.
type LoginResult struct {
	Token      string           `json:"token"`
	Instructor model.Instructor `json:"instructor"`
}

type AuthService interface {
	Authenticate(ctx context.Context, email string) (*LoginResult, error)
}

type authService struct {
	instructors instructorsservice.InstructorService
	cfg         *config.Config
}

func NewAuthService(instructors instructorsservice.InstructorService, cfg *config.Config) AuthService {
	return &authService{
		instructors: instructors,
		cfg:         cfg,
	}
}

// Authenticate is email-only: there is no password. Unknown and deactivated
// instructors get the same not-found answer, so the login screen cannot be
// used to probe the roster state.
func (s *authService) Authenticate(ctx context.Context, email string) (*LoginResult, error) {
	instructor, err := s.instructors.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !instructor.Active {
		return nil, apperrors.NotFound("Instructor")
	}

	token, err := s.signToken(instructor)
	if err != nil {
		s.cfg.Log.Error("Failed to sign session token", "instructor_id", instructor.ID, "error", err)
		return nil, apperrors.Internal("Failed to create session", err)
	}

	s.cfg.Log.Info("Instructor logged in", "instructor_id", instructor.ID, "is_admin", instructor.IsAdmin)
	return &LoginResult{
		Token:      token,
		Instructor: *instructor,
	}, nil
}

func (s *authService) signToken(instructor *model.Instructor) (string, error) {
	now := time.Now()
	claims := middleware.SessionClaims{
		InstructorID: instructor.ID,
		Email:        instructor.Email,
		IsAdmin:      instructor.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   instructor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AuthTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.AuthSecret))
}
