package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/nurse-notes/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUserID   = "id"
)

type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate supports [models.Credentials], [models.User] and
// [models.UserProfile], by value or by pointer. E-mails are expected to be
// trimmed by the caller.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.User:
		return v.validateCredentials(models.Credentials{Email: value.Email, Password: value.Password}, fields...)
	case *models.User:
		return v.validateCredentials(models.Credentials{Email: value.Email, Password: value.Password}, fields...)

	case models.UserProfile:
		return v.validateProfile(value, fields...)
	case *models.UserProfile:
		return v.validateProfile(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(credentials.Email); err != nil {
				return err
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateProfile(profile models.UserProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if profile.ID == "" {
				return ErrInvalidUserID
			}
		case FieldEmail:
			if profile.Email != "" {
				if err := validateEmail(profile.Email); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare address only; "Name <addr>" forms are rejected.
func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrMalformedEmail
	}

	return nil
}
