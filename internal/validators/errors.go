package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Field errors. Their texts are shown to the caller as-is, joined with ", ".
var (
	ErrEmptyEmail    = errors.New("Please provide an email")
	ErrInvalidEmail  = errors.New("Please provide a valid email")
	ErrEmptyPassword = errors.New("Please provide a password")
	ErrShortPassword = errors.New("Password must be at least 6 characters long")

	ErrEmptyTitle        = errors.New("Please provide a title")
	ErrEmptyDescription  = errors.New("Please provide a description")
	ErrEmptyTechnologies = errors.New("Please provide technologies as a list")
	ErrBlankTechnology   = errors.New("Technologies must not contain empty names")

	ErrUnknownSection    = errors.New("Unknown section name")
	ErrEmptySectionData  = errors.New("Section data is required")
	ErrInvalidVersion    = errors.New("Version must not be negative")
	ErrNoFieldsToUpdate  = errors.New("At least one field must be provided for update")
	ErrInvalidProjectURL = errors.New("Links must be http or https URLs")
)

// FieldErrors collects every failed rule of one validation run.
// Error joins the individual messages with ", "; errors.Is matches any of
// the collected sentinels.
type FieldErrors []error

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, ", ")
}

func (e FieldErrors) Unwrap() []error {
	return e
}

// Err returns nil when nothing was collected, e otherwise.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
