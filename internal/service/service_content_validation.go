package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
)

// ContentValidationService checks section writes before they reach the
// wrapped ContentService. Reads pass through untouched.
type ContentValidationService struct {
	inner     ContentService
	validator validators.Validator
}

func NewContentValidationService() ContentServiceWrapper {
	return &ContentValidationService{
		validator: validators.NewSectionValidator(),
	}
}

func (v *ContentValidationService) GetSection(ctx context.Context, name string) (models.Section, error) {
	return v.inner.GetSection(ctx, name)
}

func (v *ContentValidationService) SaveSection(ctx context.Context, section models.Section) (models.Section, error) {
	if !models.IsKnownSection(section.Name) {
		return models.Section{}, ErrUnknownSection
	}

	if err := v.validator.Validate(ctx, section); err != nil {
		return models.Section{}, err
	}

	return v.inner.SaveSection(ctx, section)
}

func (v *ContentValidationService) Wrap(wrapped ContentService) ContentService {
	v.inner = wrapped
	return v
}
