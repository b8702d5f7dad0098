package ports

import (
	"context"

	"github.com/99minutos/course-api/internal/core/domain"
)

// RegisterUserInput carries the already validated signup payload.
type RegisterUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// UserService defines use-case operations for accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
}
