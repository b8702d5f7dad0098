package handler

import (
	"github.com/99minutos/course-api/internal/core/domain"
	"github.com/99minutos/course-api/internal/core/ports"
)

// --- Request → Service input ---

func toCourseInput(req courseRequest) ports.CourseInput {
	return ports.CourseInput{
		Title:           req.Title.String(),
		Description:     req.Description.String(),
		EstimatedTime:   req.EstimatedTime.String(),
		MaterialsNeeded: req.MaterialsNeeded.String(),
	}
}

func toRegisterInput(req signupRequest) ports.RegisterUserInput {
	return ports.RegisterUserInput{
		FirstName:    req.FirstName.String(),
		LastName:     req.LastName.String(),
		EmailAddress: req.EmailAddress.String(),
		Password:     req.Password.String(),
	}
}

// --- Service result → HTTP response ---

func toCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		User:            c.OwnerID,
		CreatedAt:       c.CreatedAt.UTC(),
		UpdatedAt:       c.UpdatedAt.UTC(),
	}
}

func toCourseListResponse(courses []*domain.Course) []courseResponse {
	out := make([]courseResponse, len(courses))
	for i, c := range courses {
		out[i] = toCourseResponse(c)
	}
	return out
}

func toCurrentUserResponse(u *domain.User) currentUserResponse {
	return currentUserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
