package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository]. Identifiers are UUIDv7 strings assigned on insert.
type projectRepository struct {
	*DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	return &projectRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// ListProjects returns every project ordered by creation time. An empty
// collection yields an empty, non-nil slice.
func (p *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProjectsQuery()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to execute query for listing projects")
		return nil, p.wrap(err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	for rows.Next() {
		project, scanErr := scanProject(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*projectRepository.ListProjects").Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, project)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*projectRepository.ListProjects").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return projects, nil
}

// GetProject loads one project. A malformed id is reported as
// [ErrProjectNotFound] without touching the database.
func (p *projectRepository) GetProject(ctx context.Context, id string) (models.Project, error) {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(id) {
		return models.Project{}, ErrProjectNotFound
	}

	query, args, err := buildGetProjectQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	project, err := scanProject(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Project{}, p.notFoundOr(ctx, "*projectRepository.GetProject", id, err)
	}

	return project, nil
}

// CreateProject assigns a fresh identifier and inserts the project. Any id
// already present on the argument is ignored.
func (p *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	project.ID = p.ids.Generate()

	query, args, err := buildInsertProjectQuery(project)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanProject(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Str("project_id", project.ID).Msg("failed to insert project")
		return models.Project{}, p.wrap(err)
	}

	return created, nil
}

// UpdateProject overwrites every mutable field of the stored project.
func (p *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(project.ID) {
		return models.Project{}, ErrProjectNotFound
	}

	query, args, err := buildUpdateProjectQuery(project)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProject(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Project{}, p.notFoundOr(ctx, "*projectRepository.UpdateProject", project.ID, err)
	}

	return updated, nil
}

// DeleteProject removes a project. Deleting a missing project returns
// [ErrProjectNotFound], so a second delete of the same id fails cleanly.
func (p *projectRepository) DeleteProject(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(id) {
		return ErrProjectNotFound
	}

	query, args, err := buildDeleteProjectQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Str("project_id", id).Msg("failed to delete project")
		if p.classify(err) == ClassInvalidInput {
			return ErrProjectNotFound
		}
		if p.classify(err) == ClassUnavailable {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (p *projectRepository) notFoundOr(ctx context.Context, fn, id string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || p.classify(err) == ClassInvalidInput {
		return ErrProjectNotFound
	}
	logger.FromContext(ctx).Err(err).Str("func", fn).Str("project_id", id).Msg("project query failed")
	return p.wrap(err)
}

func (p *projectRepository) wrap(err error) error {
	if p.classify(err) == ClassUnavailable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func scanProject(row rowScanner) (models.Project, error) {
	var (
		project      models.Project
		technologies []byte
	)
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Image,
		&technologies,
		&project.LiveDemo,
		&project.GitHub,
		&project.Featured,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return models.Project{}, err
	}

	if err := json.Unmarshal(technologies, &project.Technologies); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	return project, nil
}
