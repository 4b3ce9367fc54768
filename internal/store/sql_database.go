package store

import (
	"database/sql"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/migrations"
)

// DB wraps a database/sql pool together with the error classifier of its
// driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the server schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateClient applies the client session schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// classify returns the class of err, or [ClassUnknown] when db has no
// classifier.
func (db *DB) classify(err error) ErrorClass {
	if db.errorClassificator == nil {
		return ClassUnknown
	}
	return db.errorClassificator.Classify(err)
}
