package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrCourseNotFound     = errors.New("course not found")
	ErrForbidden          = errors.New("access forbidden")

	ErrIdempotencyInProgress = errors.New("idempotency key in progress")
)

// ForbiddenError is returned when an authenticated user tries to mutate a
// resource owned by someone else.
type ForbiddenError struct {
	Message     string
	CurrentUser string
}

func (e *ForbiddenError) Error() string {
	return "forbidden: " + e.Message
}

// Is lets errors.Is(err, ErrForbidden) match.
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

// ValidationError carries every field violation of a single request, in rule
// declaration order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
