package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/course-api/internal/api/middleware"
	"github.com/99minutos/course-api/internal/core/domain"
)

// messageResponse is the single-message error envelope.
type messageResponse struct {
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Errors []string `json:"errors"`
}

type forbiddenResponse struct {
	Message     string `json:"message"`
	CurrentUser string `json:"currentUser"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain errors
// to status codes and JSON bodies. Unexpected errors are logged and rendered
// as a generic 500 without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, validationErrorResponse{Errors: ve.Messages}
	}

	var fe *domain.ForbiddenError
	if errors.As(err, &fe) {
		return http.StatusForbidden, forbiddenResponse{Message: fe.Message, CurrentUser: fe.CurrentUser}
	}

	// Echo's own errors (bind failures, unknown routes, 405).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, messageResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusUnauthorized, messageResponse{Message: middleware.MsgMissingCredentials}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, messageResponse{Message: middleware.MsgInvalidCredentials}
	case errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusNotFound, messageResponse{Message: "Course Not Found!"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, messageResponse{Message: "User already exists."}
	case errors.Is(err, domain.ErrIdempotencyInProgress):
		return http.StatusConflict, messageResponse{Message: "A request with this Idempotency-Key is still being processed."}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, messageResponse{Message: "access forbidden"}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, messageResponse{Message: "internal server error"}
}
