// Package validation wraps go-playground/validator for form input coming
// from the CLI and the HTTP API.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Messages maps "Field.tag" to the message shown to the guard.
type Messages map[string]string

// ValidationError describes the first field that failed.
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("campo %s inválido (%s)", e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Struct validates s and reports the first failing field. Fields are checked
// in declaration order.
func Struct(s any, msgs Messages) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	first := verrs[0]
	return &ValidationError{
		Field:   first.Field(),
		Tag:     first.Tag(),
		Message: msgs[first.Field()+"."+first.Tag()],
	}
}

// Message returns the guard-facing text of a validation error, or "" when
// err is not one.
func Message(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return ""
}
