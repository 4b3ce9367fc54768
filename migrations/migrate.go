// Package migrations embeds the SQL schema of the server database and of the
// client session file and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	serverDir = "postgres"
	clientDir = "sqlite"
)

// Migrate brings the PostgreSQL schema of the server up to date.
func Migrate(db *sql.DB) error {
	return up(db, "pgx", serverDir)
}

// MigrateClient brings the SQLite schema of the client session file up to date.
func MigrateClient(db *sql.DB) error {
	return up(db, "sqlite3", clientDir)
}

func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
