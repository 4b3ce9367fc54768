package validators

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

// SectionValidator validates section writes. The payload shape is
// section-specific and only checked for presence.
type SectionValidator struct{}

// NewSectionValidator constructs a SectionValidator and returns it as a Validator.
func NewSectionValidator() Validator {
	return &SectionValidator{}
}

func (v *SectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Section:
		return v.validateSection(value, fields...)
	case *models.Section:
		return v.validateSection(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SectionValidator) validateSection(s models.Section, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSectionName, FieldSectionData, FieldVersion}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldSectionName:
			if !models.IsKnownSection(s.Name) {
				errs = append(errs, ErrUnknownSection)
			}
		case FieldSectionData:
			if s.Data == nil {
				errs = append(errs, ErrEmptySectionData)
			}
		case FieldVersion:
			if s.Version < 0 {
				errs = append(errs, ErrInvalidVersion)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}
