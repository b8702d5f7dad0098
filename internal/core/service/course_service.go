package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/course-api/internal/api/metrics"
	"github.com/99minutos/course-api/internal/core/domain"
	"github.com/99minutos/course-api/internal/core/ports"
)

const (
	defaultPendingWait = 2 * time.Second
	defaultPendingPoll = 50 * time.Millisecond
)

type CourseService struct {
	repo        ports.CourseRepository
	idempotency ports.IdempotencyStore
	logger      zerolog.Logger

	// How long a create waits for a concurrent create holding the same
	// idempotency key.
	pendingWait time.Duration
	pendingPoll time.Duration
}

// NewCourseService returns a CourseService. idempotency may be nil, in which
// case Idempotency-Key headers are ignored.
func NewCourseService(repo ports.CourseRepository, idempotency ports.IdempotencyStore, logger zerolog.Logger) *CourseService {
	return &CourseService{
		repo:        repo,
		idempotency: idempotency,
		logger:      logger,
		pendingWait: defaultPendingWait,
		pendingPoll: defaultPendingPoll,
	}
}

// ListCourses returns all courses, most recently updated first.
func (s *CourseService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// GetCourse returns a single course or domain.ErrCourseNotFound.
func (s *CourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateCourse stores a new course owned by principal. With an idempotency
// key the key is claimed before the insert, so concurrent retries from the
// same owner produce a single course and all observe its id.
func (s *CourseService) CreateCourse(ctx context.Context, principal *domain.User, input ports.CreateCourseInput) (*ports.CreateCourseResult, error) {
	if principal == nil {
		return nil, domain.ErrInvalidCredentials
	}

	key := input.IdempotencyKey
	claimed := false
	if key != "" && s.idempotency != nil {
		existing, ok, err := s.claim(ctx, principal.ID, key)
		if err != nil {
			return nil, err
		}
		if existing != "" {
			s.logger.Info().Str("idempotency_key", key).Str("course_id", existing).Msg("idempotent replay")
			metrics.CourseMutationsTotal.WithLabelValues("replay").Inc()
			return &ports.CreateCourseResult{CourseID: existing, AlreadyExisted: true}, nil
		}
		claimed = ok
	}

	now := time.Now().UTC()
	course := &domain.Course{
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		OwnerID:         principal.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		s.logger.Error().Err(err).Msg("failed to create course")
		if claimed {
			if rerr := s.idempotency.Release(ctx, principal.ID, key); rerr != nil {
				s.logger.Warn().Err(rerr).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, err
	}

	if claimed {
		if err := s.idempotency.Complete(ctx, principal.ID, key, course.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to record idempotency key")
		}
	}

	metrics.CourseMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("course_id", course.ID).Str("owner_id", principal.ID).Msg("course created")

	return &ports.CreateCourseResult{CourseID: course.ID}, nil
}

// claim reserves key for ownerID. It returns the recorded course id when an
// earlier create already finished, or claimed=true when the caller must
// insert. A claim held by an in-flight create is polled until it resolves or
// pendingWait elapses. Store failures degrade to an unguarded create.
func (s *CourseService) claim(ctx context.Context, ownerID, key string) (courseID string, claimed bool, err error) {
	deadline := time.Now().Add(s.pendingWait)
	for {
		id, ok, cerr := s.idempotency.Claim(ctx, ownerID, key)
		switch {
		case cerr != nil:
			s.logger.Warn().Err(cerr).Str("idempotency_key", key).Msg("idempotency claim failed, creating anyway")
			return "", false, nil
		case ok:
			return "", true, nil
		case id != "":
			return id, false, nil
		}

		if time.Now().After(deadline) {
			s.logger.Warn().Str("idempotency_key", key).Msg("idempotency key still pending")
			return "", false, domain.ErrIdempotencyInProgress
		}
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case <-time.After(s.pendingPoll):
		}
	}
}

// UpdateCourse replaces the mutable fields of a course owned by principal.
// Lookup happens before the ownership check, so an unknown id is always
// reported as not found.
func (s *CourseService) UpdateCourse(ctx context.Context, principal *domain.User, id string, input ports.CourseInput) error {
	if _, err := s.loadOwned(ctx, principal, id, "update"); err != nil {
		return err
	}

	err := s.repo.Update(ctx, id, ports.CourseChanges{
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UpdatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	metrics.CourseMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("course_id", id).Str("owner_id", principal.ID).Msg("course updated")
	return nil
}

// DeleteCourse removes a course owned by principal.
func (s *CourseService) DeleteCourse(ctx context.Context, principal *domain.User, id string) error {
	if _, err := s.loadOwned(ctx, principal, id, "delete"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.CourseMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("course_id", id).Str("owner_id", principal.ID).Msg("course deleted")
	return nil
}

func (s *CourseService) loadOwned(ctx context.Context, principal *domain.User, id, action string) (*domain.Course, error) {
	if principal == nil {
		return nil, domain.ErrInvalidCredentials
	}

	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeOwner(principal, course, action); err != nil {
		s.logger.Warn().
			Str("course_id", id).
			Str("user_id", principal.ID).
			Str("action", action).
			Msg("ownership check failed")
		return nil, err
	}
	return course, nil
}
