package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/user-directory/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a user.
	FieldName = "name"

	// FieldEmail targets the e-mail address of a user.
	FieldEmail = "email"
)

var (
	// namePattern accepts letters of any script, whitespace and hyphens.
	namePattern = regexp.MustCompile(`^[\p{L}\s\-]{2,50}$`)

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// maxEmailLength fits the email column, VARCHAR(255).
const maxEmailLength = 254

// UserValidator implements Validator for models.UserInput and models.User.
// Values are trimmed before they are checked.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. When no fields are given, name and e-mail are checked
// in that order and the first error is returned.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserInput:
		return v.validateUserInput(ctx, value, fields...)
	case *models.UserInput:
		return v.validateUserInput(ctx, *value, fields...)

	case models.User:
		return v.validateUserInput(ctx, value.Input(), fields...)
	case *models.User:
		return v.validateUserInput(ctx, value.Input(), fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserInput(_ context.Context, input models.UserInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(input.Name); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(input.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if !namePattern.MatchString(name) {
		return ErrNameInvalid
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return ErrEmailTooLong
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// FieldErrors validates every field separately and returns the failures
// keyed by field name. A nil map means obj is valid. Without fields, name
// and e-mail are checked.
func FieldErrors(ctx context.Context, v Validator, obj any, fields ...string) map[string]error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	var out map[string]error
	for _, f := range fields {
		if err := v.Validate(ctx, obj, f); err != nil {
			if out == nil {
				out = make(map[string]error, len(fields))
			}
			out[f] = err
		}
	}
	return out
}
