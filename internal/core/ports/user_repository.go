package ports

import (
	"context"

	"github.com/99minutos/course-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByEmail looks up a user by normalized email address.
	// Returns domain.ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user and returns it with its assigned ID.
	// Returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
