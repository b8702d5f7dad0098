package ports

import (
	"context"

	"github.com/99minutos/course-api/internal/core/domain"
)

// Authenticator verifies a basic-auth credential pair against stored users.
type Authenticator interface {
	// Authenticate returns the matching user, domain.ErrMissingCredentials when
	// either part is empty, or domain.ErrInvalidCredentials when the email is
	// unknown or the password does not match.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
