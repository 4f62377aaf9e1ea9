// Package validation checks outgoing payloads before they reach the API, using
// the same rules the server applies.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/piresc/taxe/internal/pkg/models"
)

var (
	validate  *validator.Validate
	nameChars = regexp.MustCompile(`^[a-zA-Z- ]+$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	mustRegister("taxe_name", func(fl validator.FieldLevel) bool {
		return IsValidName(fl.Field().String())
	})
	mustRegister("taxe_password", func(fl validator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	})
	mustRegister("taxe_time", func(fl validator.FieldLevel) bool {
		_, err := models.ParseTime(fl.Field().String())
		return err == nil
	})
	mustRegister("taxe_status", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseBookingStatus(fl.Field().String())
		return ok
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// jsonFieldName reports fields by their wire name so errors line up with form inputs
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// IsValidName: longer than 3 characters, letters, spaces and hyphens only
func IsValidName(name string) bool {
	return len(name) > 3 && nameChars.MatchString(name)
}

// IsValidPassword: longer than 8 characters with at least one digit
func IsValidPassword(password string) bool {
	if len(password) <= 8 {
		return false
	}
	return strings.IndexFunc(password, unicode.IsDigit) >= 0
}

// FieldError is one rejected input
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// Error lists every rejected input of a payload
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the names of the rejected inputs
func (e *Error) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

// Validate checks v against its validate tags
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	out := &Error{Errors: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

// IsValidationError returns the rejected inputs if err is a validation failure
func IsValidationError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_with":
		return "Your current password is required"
	case "email":
		return "Invalid email format"
	case "gte":
		return "Value must be greater than or equal to " + fe.Param()
	case "taxe_name":
		return "Names must be longer than 3 characters and contain only letters, spaces and hyphens"
	case "taxe_password":
		return "Passwords must be longer than 8 characters and contain a number"
	case "taxe_time":
		return "Invalid time"
	case "taxe_status":
		return "Unknown booking status"
	default:
		return "Invalid value"
	}
}
