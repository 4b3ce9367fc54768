package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContentService reads and writes named content sections.
type ContentService interface {
	// GetSection returns the stored section. An unknown name yields
	// [ErrUnknownSection]; a known name that was never written yields
	// store.ErrSectionNotFound.
	GetSection(ctx context.Context, name string) (models.Section, error)

	// SaveSection replaces the whole payload of a section. A positive
	// Version turns the write into a compare-and-swap.
	SaveSection(ctx context.Context, section models.Section) (models.Section, error)
}

// ProjectService manages portfolio project records.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CheckRole(ctx context.Context, email string) (models.RoleCheck, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ContentServiceWrapper defines middleware composition for ContentService.
// Implementations wrap an existing ContentService to add behavior such as
// logging or validating.
type ContentServiceWrapper interface {
	Wrap(ContentService) ContentService // returns a decorated ContentService applying additional behavior
}

// ProjectServiceWrapper defines middleware composition for ProjectService.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}
