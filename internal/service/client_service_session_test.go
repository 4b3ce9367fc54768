package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionDeps struct {
	sessions *mock.MockSessionRepository
	adapter  *mock.MockServerAdapter
}

func newTestSessionSvc(t *testing.T) (*clientSessionService, sessionDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := sessionDeps{
		sessions: mock.NewMockSessionRepository(ctrl),
		adapter:  mock.NewMockServerAdapter(ctrl),
	}
	svc := NewClientSessionService(deps.sessions, deps.adapter, logger.Nop()).(*clientSessionService)
	return svc, deps
}

func signedToken(t *testing.T, role models.Role, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("go-portfolio-test", 1, role, ttl, "k")
	require.NoError(t, err)
	return token.SignedString
}

func TestClientSession_Restore_NoStoredSession(t *testing.T) {
	svc, deps := newTestSessionSvc(t)

	deps.sessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

	session, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, session)
	assert.False(t, svc.IsAdmin())
}

func TestClientSession_Restore_ValidAdmin(t *testing.T) {
	svc, deps := newTestSessionSvc(t)
	token := signedToken(t, models.RoleAdmin, time.Hour)

	deps.sessions.EXPECT().LoadSession(gomock.Any()).
		Return(models.Session{Email: "a@x.com", Role: models.RoleAdmin, Token: token}, nil)
	deps.adapter.EXPECT().CheckRole(gomock.Any(), "a@x.com").Return(true, nil)

	session, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
	assert.True(t, svc.IsAdmin())
	assert.Equal(t, token, svc.Token())
}

func TestClientSession_Restore_ExpiredTokenDropped(t *testing.T) {
	svc, deps := newTestSessionSvc(t)
	token := signedToken(t, models.RoleAdmin, -time.Minute)

	deps.sessions.EXPECT().LoadSession(gomock.Any()).
		Return(models.Session{Email: "a@x.com", Role: models.RoleAdmin, Token: token}, nil)
	deps.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Session) error {
			assert.Empty(t, s.Token)
			assert.Equal(t, "a@x.com", s.Email)
			return nil
		},
	)
	deps.adapter.EXPECT().CheckRole(gomock.Any(), "a@x.com").Return(true, nil)

	session, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.Email)
	assert.False(t, svc.IsAdmin())
}

func TestClientSession_Restore_RoleCheckDemotes(t *testing.T) {
	svc, deps := newTestSessionSvc(t)
	token := signedToken(t, models.RoleAdmin, time.Hour)

	deps.sessions.EXPECT().LoadSession(gomock.Any()).
		Return(models.Session{Email: "a@x.com", Role: models.RoleAdmin, Token: token}, nil)
	deps.adapter.EXPECT().CheckRole(gomock.Any(), "a@x.com").Return(false, nil)

	_, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, svc.IsAdmin())
}

func TestClientSession_Restore_RoleCheckFailureKeepsRole(t *testing.T) {
	svc, deps := newTestSessionSvc(t)
	token := signedToken(t, models.RoleAdmin, time.Hour)

	deps.sessions.EXPECT().LoadSession(gomock.Any()).
		Return(models.Session{Email: "a@x.com", Role: models.RoleAdmin, Token: token}, nil)
	deps.adapter.EXPECT().CheckRole(gomock.Any(), "a@x.com").Return(false, errors.New("GET request: connection refused"))

	_, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, svc.IsAdmin())
}

func TestClientSession_Login(t *testing.T) {
	svc, deps := newTestSessionSvc(t)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	token := signedToken(t, models.RoleAdmin, time.Hour)
	creds := models.Credentials{Email: "a@x.com", Password: "secret1"}

	deps.adapter.EXPECT().Login(gomock.Any(), creds).Return(adapter.LoginResult{
		User:  models.UserInfo{ID: 1, Email: "a@x.com", Role: models.RoleUser},
		Token: token,
	}, nil)
	deps.sessions.EXPECT().SaveSession(gomock.Any(), models.Session{
		Email: "a@x.com", Role: models.RoleAdmin, Token: token, SavedAt: fixed,
	}).Return(nil)

	session, err := svc.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Role, "role comes from the token claims")
	assert.True(t, svc.IsAdmin())
}

func TestClientSession_Login_PersistFailureStillSignsIn(t *testing.T) {
	svc, deps := newTestSessionSvc(t)
	token := signedToken(t, models.RoleAdmin, time.Hour)

	deps.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(adapter.LoginResult{
		User: models.UserInfo{Email: "a@x.com", Role: models.RoleAdmin}, Token: token,
	}, nil)
	deps.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, svc.IsAdmin())
}

func TestClientSession_Login_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"wrong password", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials), ErrInvalidCredentials},
		{"not admin", adapter.ErrForbidden, ErrAccessDenied},
		{"throttled", adapter.ErrTooManyRequests, ErrRateLimited},
		{"cancelled", context.Canceled, context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestSessionSvc(t)
			deps.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(adapter.LoginResult{}, tt.err)

			_, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "x"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, svc.IsAdmin())
		})
	}
}

func TestClientSession_Logout(t *testing.T) {
	svc, deps := newTestSessionSvc(t)
	svc.session = models.Session{Email: "a@x.com", Role: models.RoleAdmin, Token: "t"}

	deps.sessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, models.Session{}, svc.Current())
	assert.Empty(t, svc.Token())
}
