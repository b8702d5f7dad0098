package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/course-api/internal/api/metrics"
	"github.com/99minutos/course-api/internal/core/domain"
	"github.com/99minutos/course-api/internal/core/ports"
)

// UserService implements account signup.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register stores a new user with a bcrypt hash of the password. The email is
// normalized first; an already registered email yields domain.ErrUserExists.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	email := domain.NormalizeEmail(input.EmailAddress)

	// Fast path; the unique index still catches concurrent signups.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error().Err(err).Msg("failed to create user")
		}
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Str("email", created.EmailAddress).Msg("user registered")
	return created, nil
}
