package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// V is the shared validator instance.
var V *validator.Validate

func init() {
	V = validator.New(validator.WithRequiredStructEnabled())
	_ = V.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})
}

// FieldError describes a single failed field rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every failed rule of a struct.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// Validate checks struct tags on v and returns FieldErrors when any rule fails.
func Validate(v any) error {
	err := V.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	out := make(FieldErrors, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{Field: toJSONFieldName(e.Field()), Message: message(e)})
	}
	return out
}

// Details flattens a validation error into a field -> message map for
// DomainError details.
func Details(err error) map[string]any {
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]any{"error": err.Error()}
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field] = fe.Message
	}
	return details
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "utf8":
		return "must be valid UTF-8"
	default:
		return fmt.Sprintf("failed validation: %s", e.Tag())
	}
}
