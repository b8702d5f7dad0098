package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/course-api/internal/api/middleware"
	"github.com/99minutos/course-api/internal/core/domain"
)

// principal returns the user injected by the BasicAuth middleware. Its absence
// means the route was mounted without the gate, so the request is rejected
// with 401 before any service call.
func principal(c echo.Context) (*domain.User, error) {
	u := middleware.Principal(c)
	if u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, middleware.MsgMissingCredentials)
	}
	return u, nil
}
