package store

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SectionRepository persists named content sections as whole documents.
type SectionRepository interface {
	// GetSection returns the stored section or [ErrSectionNotFound].
	GetSection(ctx context.Context, name string) (models.Section, error)

	// PutSection replaces the whole payload of a section, creating it when
	// absent. A positive section.Version makes the write conditional on the
	// stored version; a mismatch yields [ErrSectionVersionConflict].
	PutSection(ctx context.Context, section models.Section) (models.Section, error)
}

// ProjectRepository persists portfolio project records.
type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// UserRepository persists credential records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
