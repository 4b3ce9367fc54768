package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		validator:         validators.NewProjectValidator(),
		logger:            logger,
	}
}

func (p *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return p.projectRepository.ListProjects(ctx)
}

func (p *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		return models.Project{}, err
	}

	logger.FromContext(ctx).Info().Str("project_id", created.ID).Msg("project created")
	return created, nil
}

// UpdateProject loads the stored project, applies the provided fields over
// it, re-validates the merged document and writes it back whole.
func (p *projectService) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	current, err := p.projectRepository.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	merged := update.Apply(current)
	if err := p.validator.Validate(ctx, merged); err != nil {
		return models.Project{}, err
	}

	return p.projectRepository.UpdateProject(ctx, merged)
}

func (p *projectService) DeleteProject(ctx context.Context, id string) error {
	if err := p.projectRepository.DeleteProject(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("project_id", id).Msg("project deleted")
	return nil
}
