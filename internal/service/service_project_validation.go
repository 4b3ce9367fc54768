package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
)

// ProjectValidationService rejects malformed project writes before they
// reach the wrapped ProjectService.
type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService() ProjectServiceWrapper {
	return &ProjectValidationService{
		validator: validators.NewProjectValidator(),
	}
}

func (v *ProjectValidationService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return v.inner.ListProjects(ctx)
}

func (v *ProjectValidationService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if err := v.validator.Validate(ctx, project); err != nil {
		return models.Project{}, err
	}

	return v.inner.CreateProject(ctx, project)
}

func (v *ProjectValidationService) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Project{}, err
	}

	return v.inner.UpdateProject(ctx, id, update)
}

func (v *ProjectValidationService) DeleteProject(ctx context.Context, id string) error {
	return v.inner.DeleteProject(ctx, id)
}

func (v *ProjectValidationService) Wrap(wrapped ProjectService) ProjectService {
	v.inner = wrapped
	return v
}
