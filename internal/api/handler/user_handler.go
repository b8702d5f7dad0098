package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/course-api/internal/api/metrics"
	"github.com/99minutos/course-api/internal/core/ports"
)

// UserHandler handles the /users endpoints.
type UserHandler struct {
	svc ports.UserService
}

func NewUserHandler(svc ports.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Current handles GET /users and returns the authenticated user.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  currentUserResponse
// @Failure      401  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) Current(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCurrentUserResponse(user))
}

// Signup handles POST /users.
//
// @Summary      Create an account
// @Tags         users
// @Accept       json
// @Param        body  body  signupRequest  true  "Signup"
// @Success      201
// @Failure      400  {object}  validationErrorResponse
// @Router       /users [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("user").Inc()
		return err
	}

	if _, err := h.svc.Register(c.Request().Context(), toRegisterInput(req)); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}
