package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail     = errors.New("email is required")
	ErrMalformedEmail = errors.New("malformed email")
	ErrEmptyPassword  = errors.New("password is required")
	ErrInvalidUserID  = errors.New("user id is required")
)
