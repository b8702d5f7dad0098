package handler

import (
	"time"

	"github.com/99minutos/course-api/internal/pkg/validation"
)

// messageResponse is the envelope for single-message failures.
type messageResponse struct {
	Message string `json:"message"`
}

// validationErrorResponse lists every field violation of a request.
type validationErrorResponse struct {
	Errors []string `json:"errors"`
}

// forbiddenResponse is returned when a user mutates a course they do not own.
type forbiddenResponse struct {
	Message     string `json:"message"`
	CurrentUser string `json:"currentUser"`
}

// --- Request / Response types ---

// courseRequest is the body of POST /courses and PUT /courses/:id.
type courseRequest struct {
	Title           jsonField `json:"title"`
	Description     jsonField `json:"description"`
	EstimatedTime   jsonField `json:"estimatedTime"`
	MaterialsNeeded jsonField `json:"materialsNeeded"`
}

func (req *courseRequest) rules(r *validation.Rules) []validation.Field {
	return []validation.Field{
		r.Field("title", req.Title.ptr(),
			r.Exists(`"title" is required`),
			r.NotEmpty(`Please enter a "title"`)),
		r.Field("description", req.Description.ptr(),
			r.Exists(`"description" is required`),
			r.NotEmpty(`Please enter a "description"`)),
	}
}

type createCourseResponse struct {
	CourseID string `json:"courseId"`
}

type courseResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   string    `json:"estimatedTime,omitempty"`
	MaterialsNeeded string    `json:"materialsNeeded,omitempty"`
	User            string    `json:"user"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
