package ports

import (
	"context"

	"github.com/99minutos/course-api/internal/core/domain"
)

// CourseInput carries the validated body of a create or update request.
type CourseInput struct {
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
}

// CreateCourseInput adds the creation-only parameters to CourseInput.
type CreateCourseInput struct {
	CourseInput
	// IdempotencyKey is optional; a repeated key from the same owner replays
	// the first result instead of inserting again.
	IdempotencyKey string
}

// CreateCourseResult is returned by CreateCourse.
type CreateCourseResult struct {
	CourseID string
	// AlreadyExisted is true when the Idempotency-Key matched an earlier create.
	AlreadyExisted bool
}

// CourseService defines use-case operations for courses. Mutating operations
// take the authenticated principal; reads are public.
type CourseService interface {
	ListCourses(ctx context.Context) ([]*domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	CreateCourse(ctx context.Context, principal *domain.User, input CreateCourseInput) (*CreateCourseResult, error)
	UpdateCourse(ctx context.Context, principal *domain.User, id string, input CourseInput) error
	DeleteCourse(ctx context.Context, principal *domain.User, id string) error
}
