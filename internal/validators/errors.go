package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired  = errors.New("name is required")
	ErrNameInvalid   = errors.New("name must be 2 to 50 letters, spaces or hyphens")
	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("email is not a valid address")
	ErrEmailTooLong  = errors.New("email must be at most 254 characters")
)
