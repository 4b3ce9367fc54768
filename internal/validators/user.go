package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
)

var emailPattern = regexp.MustCompile(`^(([^<>()[\]\\.,;:\s@"]+(\.[^<>()[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// UserValidator validates registration bodies and login credentials.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator and returns it as a Validator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User and models.Credentials, by value or pointer.
// Without fields both the email and the password rules run.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validate(value.Email, value.Password, fields...)
	case *models.User:
		return v.validate(value.Email, value.Password, fields...)
	case models.Credentials:
		return v.validate(value.Email, value.Password, fields...)
	case *models.Credentials:
		return v.validate(value.Email, value.Password, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validate(email, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			switch {
			case strings.TrimSpace(email) == "":
				errs = append(errs, ErrEmptyEmail)
			case !emailPattern.MatchString(email):
				errs = append(errs, ErrInvalidEmail)
			}
		case FieldPassword:
			switch {
			case password == "":
				errs = append(errs, ErrEmptyPassword)
			case len(password) < minPasswordLength:
				errs = append(errs, ErrShortPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}
