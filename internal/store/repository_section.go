package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// sectionRepository is the PostgreSQL-backed implementation of
// [SectionRepository]. Each section is a single row keyed by name whose JSONB
// data column is always written whole.
type sectionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSectionRepository constructs a [SectionRepository] backed by the
// provided database connection and logger.
func NewSectionRepository(db *DB, logger *logger.Logger) SectionRepository {
	return &sectionRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSection loads one section by name.
//
// Error handling:
//   - no row → [ErrSectionNotFound]
//   - connection failure → [ErrStoreUnavailable]
func (s *sectionRepository) GetSection(ctx context.Context, name string) (models.Section, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSectionQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*sectionRepository.GetSection").Msg("failed to build query")
		return models.Section{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	section, err := scanSection(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Section{}, ErrSectionNotFound
		}
		log.Err(err).Str("func", "*sectionRepository.GetSection").Str("section", name).Msg("failed to get section")
		return models.Section{}, s.wrap(err)
	}

	return section, nil
}

// PutSection writes the full payload of a section.
//
// With section.Version == 0 the write is an upsert and always succeeds. With
// a positive version the row is only replaced while its stored version
// matches; otherwise [ErrSectionVersionConflict] is returned and nothing
// changes.
func (s *sectionRepository) PutSection(ctx context.Context, section models.Section) (models.Section, error) {
	log := logger.FromContext(ctx)

	build := buildUpsertSectionQuery
	if section.Version > 0 {
		build = buildConditionalUpdateSectionQuery
	}

	query, args, err := build(section)
	if err != nil {
		log.Err(err).Str("func", "*sectionRepository.PutSection").Msg("failed to build query")
		return models.Section{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanSection(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*sectionRepository.PutSection").
				Str("section", section.Name).
				Int64("expected_version", section.Version).
				Msg("stale section write rejected")
			return models.Section{}, ErrSectionVersionConflict
		}
		log.Err(err).Str("func", "*sectionRepository.PutSection").Str("section", section.Name).Msg("failed to save section")
		return models.Section{}, s.wrap(err)
	}

	return saved, nil
}

func (s *sectionRepository) wrap(err error) error {
	if s.classify(err) == ClassUnavailable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func scanSection(row *sql.Row) (models.Section, error) {
	var (
		section models.Section
		raw     []byte
	)
	if err := row.Scan(&section.Name, &raw, &section.Version, &section.CreatedAt, &section.UpdatedAt); err != nil {
		return models.Section{}, err
	}

	if err := json.Unmarshal(raw, &section.Data); err != nil {
		return models.Section{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	if section.Data == nil {
		section.Data = models.SectionData{}
	}

	return section, nil
}
