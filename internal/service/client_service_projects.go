package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type clientProjectService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService

	logger *logger.Logger
}

func NewClientProjectService(serverAdapter adapter.ServerAdapter, session ClientSessionService, logger *logger.Logger) ClientProjectService {
	return &clientProjectService{
		adapter: serverAdapter,
		session: session,
		logger:  logger,
	}
}

func (p *clientProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := p.adapter.ListProjects(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return projects, nil
}

func (p *clientProjectService) Create(ctx context.Context, project models.Project) (models.Project, error) {
	if !p.session.IsAdmin() {
		return models.Project{}, ErrNotAuthenticated
	}

	created, err := p.adapter.CreateProject(ctx, p.session.Token(), project)
	if err != nil {
		return models.Project{}, mapAdapterError(err)
	}
	return created, nil
}

func (p *clientProjectService) Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	if !p.session.IsAdmin() {
		return models.Project{}, ErrNotAuthenticated
	}

	updated, err := p.adapter.UpdateProject(ctx, p.session.Token(), id, update)
	if err != nil {
		return models.Project{}, mapAdapterError(err)
	}
	return updated, nil
}

func (p *clientProjectService) Delete(ctx context.Context, id string) error {
	if !p.session.IsAdmin() {
		return ErrNotAuthenticated
	}

	if err := p.adapter.DeleteProject(ctx, p.session.Token(), id); err != nil {
		return mapAdapterError(err)
	}
	return nil
}
