package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/course-api/internal/api/metrics"
	"github.com/99minutos/course-api/internal/core/domain"
	"github.com/99minutos/course-api/internal/core/ports"
)

// PrincipalKey is the echo.Context key holding the authenticated *domain.User.
const PrincipalKey = "currentUser"

// User-facing rejection messages. Unknown email and wrong password share one
// message.
const (
	MsgMissingCredentials = "Please enter your email and/or password."
	MsgInvalidCredentials = "Invalid email and/or password"
)

// BasicAuth resolves HTTP basic credentials (email + password) to a user and
// injects it into the context. Rejected requests never reach next.
func BasicAuth(auth ports.Authenticator, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A missing or malformed header yields empty parts.
			email, password, _ := c.Request().BasicAuth()

			user, err := auth.Authenticate(c.Request().Context(), email, password)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrMissingCredentials):
					metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthMissing).Inc()
					log.Warn().Str("path", c.Path()).Msg(MsgMissingCredentials)
				case errors.Is(err, domain.ErrInvalidCredentials):
					metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthInvalid).Inc()
					log.Warn().Str("path", c.Path()).Msg(MsgInvalidCredentials)
				default:
					metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthError).Inc()
				}
				return err
			}

			metrics.AuthAttemptsTotal.WithLabelValues(metrics.AuthSuccess).Inc()
			log.Info().Str("email", user.EmailAddress).Msg("authentication succeeded")

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}

// Principal returns the user injected by BasicAuth, or nil when the request
// did not pass through it.
func Principal(c echo.Context) *domain.User {
	u, _ := c.Get(PrincipalKey).(*domain.User)
	return u
}
