// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"strings"

	domainerrors "melospizza/internal/domain/errors"
	"melospizza/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator validates request DTOs against their struct tags.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag failures surface as a domain
// validation error so the central error handler renders them like any other
// malformed input.
func (ev *EchoValidator) Validate(i any) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	var tagErrs validator.ValidationErrors
	if errors.As(err, &tagErrs) {
		fields := make([]string, 0, len(tagErrs))
		for _, fieldErr := range tagErrs {
			fields = append(fields, fieldMessage(fieldErr))
		}

		return domainerrors.NewValidationError(fields...)
	}

	return errors.Wrap(err, "failed to validate request")
}

// fieldMessage renders a tag failure in the storefront's locale. Semantic
// rules get their precise wording in the workflow layer; these cover the
// structural tags.
func fieldMessage(fieldErr validator.FieldError) string {
	name := strings.ToLower(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("El campo '%s' es obligatorio", name)
	case "min":
		return fmt.Sprintf("El campo '%s' no alcanza el mínimo permitido", name)
	case "gte":
		return fmt.Sprintf("El campo '%s' está por debajo del mínimo permitido", name)
	default:
		return fmt.Sprintf("El campo '%s' es inválido", name)
	}
}
