package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/course-api/internal/api/metrics"
	"github.com/99minutos/course-api/internal/core/ports"
)

// IdempotencyKeyHeader lets clients retry POST /courses without creating
// duplicates.
const IdempotencyKeyHeader = "Idempotency-Key"

// CourseHandler handles the /courses endpoints.
type CourseHandler struct {
	svc ports.CourseService
}

func NewCourseHandler(svc ports.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// List handles GET /courses.
//
// @Summary      List courses
// @Description  Returns every course, most recently updated first.
// @Tags         courses
// @Produce      json
// @Success      200  {array}   courseResponse
// @Failure      500  {object}  messageResponse
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.svc.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseListResponse(courses))
}

// Get handles GET /courses/:id.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  courseResponse
// @Failure      404  {object}  messageResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.svc.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(course))
}

// Create handles POST /courses.
//
// @Summary      Create a course
// @Description  The authenticated user becomes the owner. An optional Idempotency-Key
// @Description  header makes retries return the original course id.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        Idempotency-Key  header    string         false  "Client-generated retry key"
// @Param        body             body      courseRequest  true   "Course"
// @Success      201              {object}  createCourseResponse
// @Failure      400              {object}  validationErrorResponse
// @Failure      401              {object}  messageResponse
// @Failure      409              {object}  messageResponse
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("course").Inc()
		return err
	}

	result, err := h.svc.CreateCourse(c.Request().Context(), user, ports.CreateCourseInput{
		CourseInput:    toCourseInput(req),
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get(IdempotencyKeyHeader)),
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, coursePath(result.CourseID))
	return c.JSON(http.StatusCreated, createCourseResponse{CourseID: result.CourseID})
}

// Update handles PUT /courses/:id.
//
// @Summary      Update a course
// @Description  Only the owner may update a course.
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        id    path  string         true  "Course ID"
// @Param        body  body  courseRequest  true  "Course"
// @Success      204
// @Failure      400  {object}  validationErrorResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  forbiddenResponse
// @Failure      404  {object}  messageResponse
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("course").Inc()
		return err
	}

	id := c.Param("id")
	if err := h.svc.UpdateCourse(c.Request().Context(), user, id, toCourseInput(req)); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, coursePath(id))
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /courses/:id.
//
// @Summary      Delete a course
// @Description  Only the owner may delete a course.
// @Tags         courses
// @Security     BasicAuth
// @Param        id  path  string  true  "Course ID"
// @Success      204
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  forbiddenResponse
// @Failure      404  {object}  messageResponse
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteCourse(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func coursePath(id string) string {
	return "/courses/" + id
}
