package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
)

// Storages groups the server-side repositories over one PostgreSQL pool.
type Storages struct {
	SectionRepository SectionRepository
	ProjectRepository ProjectRepository
	UserRepository    UserRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// every repository to the shared pool.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		SectionRepository: NewSectionRepository(db, logger),
		ProjectRepository: NewProjectRepository(db, logger),
		UserRepository:    NewUserRepository(db, logger),
		db:                db,
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
