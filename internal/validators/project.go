package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
)

// ProjectValidator validates project documents and project update bodies.
type ProjectValidator struct{}

// NewProjectValidator constructs a ProjectValidator and returns it as a Validator.
func NewProjectValidator() Validator {
	return &ProjectValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Project / *models.Project: title, description, technologies, links
//   - models.ProjectUpdate / *models.ProjectUpdate: provided fields only
func (v *ProjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Project:
		return v.validateProject(value, fields...)
	case *models.Project:
		return v.validateProject(*value, fields...)
	case models.ProjectUpdate:
		return v.validateUpdate(value, fields...)
	case *models.ProjectUpdate:
		return v.validateUpdate(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProjectValidator) validateProject(p models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldTechnologies, FieldLinks}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(p.Title) == "" {
				errs = append(errs, ErrEmptyTitle)
			}
		case FieldDescription:
			if strings.TrimSpace(p.Description) == "" {
				errs = append(errs, ErrEmptyDescription)
			}
		case FieldTechnologies:
			if err := checkTechnologies(p.Technologies); err != nil {
				errs = append(errs, err)
			}
		case FieldLinks:
			if !validLink(p.LiveDemo) || !validLink(p.GitHub) {
				errs = append(errs, ErrInvalidProjectURL)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

// validateUpdate checks only the fields a patch actually carries.
func (v *ProjectValidator) validateUpdate(u models.ProjectUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldTitle, FieldDescription, FieldTechnologies, FieldLinks}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldAnyUpdate:
			if u.Title == nil && u.Description == nil && u.Image == nil && u.Technologies == nil &&
				u.LiveDemo == nil && u.GitHub == nil && u.Featured == nil {
				errs = append(errs, ErrNoFieldsToUpdate)
			}
		case FieldTitle:
			if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
				errs = append(errs, ErrEmptyTitle)
			}
		case FieldDescription:
			if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
				errs = append(errs, ErrEmptyDescription)
			}
		case FieldTechnologies:
			if u.Technologies != nil {
				if err := checkTechnologies(*u.Technologies); err != nil {
					errs = append(errs, err)
				}
			}
		case FieldLinks:
			if (u.LiveDemo != nil && !validLink(*u.LiveDemo)) || (u.GitHub != nil && !validLink(*u.GitHub)) {
				errs = append(errs, ErrInvalidProjectURL)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

// checkTechnologies requires a list (nil means the field was absent) whose
// entries are non-blank. An empty list is accepted.
func checkTechnologies(technologies []string) error {
	if technologies == nil {
		return ErrEmptyTechnologies
	}
	for _, t := range technologies {
		if strings.TrimSpace(t) == "" {
			return ErrBlankTechnology
		}
	}
	return nil
}

// validLink accepts an empty value or an absolute http(s) URL.
func validLink(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
