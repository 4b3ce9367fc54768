package service

import (
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type Services struct {
	AuthService    AuthService
	ContentService ContentService
	ProjectService ProjectService
	AppInfoService AppInfoService
}

// NewServices wires the server services over storages. Content and project
// services are wrapped with validation so handlers never reach the store
// with malformed input.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		ContentService: NewContentValidationService().Wrap(NewContentService(storages.SectionRepository, logger)),
		ProjectService: NewProjectValidationService().Wrap(NewProjectService(storages.ProjectRepository, logger)),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
