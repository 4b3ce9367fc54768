package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type contentService struct {
	sectionRepository store.SectionRepository

	logger *logger.Logger
}

func NewContentService(sectionRepository store.SectionRepository, logger *logger.Logger) ContentService {
	return &contentService{
		sectionRepository: sectionRepository,
		logger:            logger,
	}
}

func (c *contentService) GetSection(ctx context.Context, name string) (models.Section, error) {
	if !models.IsKnownSection(name) {
		return models.Section{}, ErrUnknownSection
	}
	return c.sectionRepository.GetSection(ctx, name)
}

func (c *contentService) SaveSection(ctx context.Context, section models.Section) (models.Section, error) {
	if !models.IsKnownSection(section.Name) {
		return models.Section{}, ErrUnknownSection
	}

	saved, err := c.sectionRepository.PutSection(ctx, section)
	if err != nil {
		return models.Section{}, err
	}

	logger.FromContext(ctx).Info().
		Str("section", saved.Name).
		Int64("version", saved.Version).
		Msg("section saved")

	return saved, nil
}
