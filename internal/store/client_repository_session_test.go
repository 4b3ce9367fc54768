package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewSessionRepository(&DB{DB: db, logger: l}, l), mock
}

func TestSessionRepository_SaveSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	saved := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectExec("INSERT INTO session \\(id,email,role,token,saved_at\\) VALUES \\(\\?,\\?,\\?,\\?,\\?\\) ON CONFLICT \\(id\\)").
		WithArgs(1, "admin@example.com", "admin", "tok", saved).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSession(context.Background(), models.Session{
		Email:   "admin@example.com",
		Role:    models.RoleAdmin,
		Token:   "tok",
		SavedAt: saved,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_LoadSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	saved := time.Now().UTC()
	mock.ExpectQuery("SELECT email, role, token, saved_at FROM session WHERE id = \\?").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow("admin@example.com", "admin", "tok", saved))

	session, err := repo.LoadSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", session.Email)
	assert.True(t, session.IsAdmin())
}

func TestSessionRepository_LoadSession_Empty(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT email").WithArgs(1).WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := repo.LoadSession(context.Background())
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSessionRepository_DeleteSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM session").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM session").WillReturnError(errors.New("disk I/O error"))

	require.NoError(t, repo.DeleteSession(context.Background()))
	assert.ErrorIs(t, repo.DeleteSession(context.Background()), ErrExecutingStatement)
}
