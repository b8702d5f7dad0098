package ports

import (
	"context"
	"time"

	"github.com/99minutos/course-api/internal/core/domain"
)

// CourseChanges holds the mutable fields of a course. The owner is not part
// of it on purpose: ownership never changes after creation.
type CourseChanges struct {
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
	UpdatedAt       time.Time
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	// List returns every course, most recently updated first.
	List(ctx context.Context) ([]*domain.Course, error)
	// FindByID returns domain.ErrCourseNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	// Create inserts c and sets c.ID.
	Create(ctx context.Context, c *domain.Course) error
	Update(ctx context.Context, id string, changes CourseChanges) error
	Delete(ctx context.Context, id string) error
}

// IdempotencyStore reserves an (owner, Idempotency-Key) pair before a course
// is inserted and records the resulting course id afterwards.
type IdempotencyStore interface {
	// Claim atomically reserves the key. claimed is true when the caller owns
	// the reservation and must insert. Otherwise courseID is the id recorded
	// by the winner, or "" while the winner is still inserting.
	Claim(ctx context.Context, ownerID, key string) (courseID string, claimed bool, err error)
	// Complete records the course id for a key the caller claimed.
	Complete(ctx context.Context, ownerID, key, courseID string) error
	// Release drops a claim whose insert failed so a retry can proceed.
	Release(ctx context.Context, ownerID, key string) error
}
