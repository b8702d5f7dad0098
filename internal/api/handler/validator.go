package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/99minutos/course-api/internal/core/domain"
	"github.com/99minutos/course-api/internal/pkg/validation"
)

// ruled is implemented by request payloads that declare their own field rules.
type ruled interface {
	rules(r *validation.Rules) []validation.Field
}

// echoValidator lets Echo call c.Validate(req). Payloads implementing ruled are
// checked with their declared rules; anything else falls back to struct tags.
type echoValidator struct {
	rules *validation.Rules
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{rules: validation.New()}
}

// Validate satisfies the echo.Validator interface. Violations are returned as
// a *domain.ValidationError listing every message.
func (ev *echoValidator) Validate(i any) error {
	if r, ok := i.(ruled); ok {
		if msgs := validation.Evaluate(r.rules(ev.rules)...); len(msgs) > 0 {
			return &domain.ValidationError{Messages: msgs}
		}
		return nil
	}

	if err := ev.rules.Validator().Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return &domain.ValidationError{Messages: msgs}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
