package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	checkRoleFn    func(ctx context.Context, email string) (models.RoleCheck, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CheckRole(ctx context.Context, email string) (models.RoleCheck, error) {
	return m.checkRoleFn(ctx, email)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockContentService struct {
	getSectionFn  func(ctx context.Context, name string) (models.Section, error)
	saveSectionFn func(ctx context.Context, section models.Section) (models.Section, error)
}

func (m *mockContentService) GetSection(ctx context.Context, name string) (models.Section, error) {
	return m.getSectionFn(ctx, name)
}

func (m *mockContentService) SaveSection(ctx context.Context, section models.Section) (models.Section, error) {
	return m.saveSectionFn(ctx, section)
}

type mockProjectService struct {
	listProjectsFn  func(ctx context.Context) ([]models.Project, error)
	createProjectFn func(ctx context.Context, project models.Project) (models.Project, error)
	updateProjectFn func(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	deleteProjectFn func(ctx context.Context, id string) error
}

func (m *mockProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return m.listProjectsFn(ctx)
}

func (m *mockProjectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	return m.createProjectFn(ctx, project)
}

func (m *mockProjectService) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	return m.updateProjectFn(ctx, id, update)
}

func (m *mockProjectService) DeleteProject(ctx context.Context, id string) error {
	return m.deleteProjectFn(ctx, id)
}

type mockAppInfoService struct {
	info models.AppBuildInfo
}

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return m.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	adminToken = "admin.jwt.token"
	userToken  = "user.jwt.token"
)

var testServerConfig = config.Server{
	HTTPAddress:    "localhost:8080",
	AllowedOrigins: []string{"*"},
	LoginRateLimit: 100,
	LoginRateBurst: 100,
}

// tokenAuth is an AuthService whose ParseToken accepts adminToken and
// userToken only.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case adminToken:
				return models.Token{UserID: 1, TokenClaims: models.TokenClaims{Role: models.RoleAdmin}}, nil
			case userToken:
				return models.Token{UserID: 2, TokenClaims: models.TokenClaims{Role: models.RoleUser}}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

// newTestHandler builds a Handler over svcs, filling unset services with
// mocks whose methods are never expected to run.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = tokenAuth()
	}
	if svcs.ContentService == nil {
		svcs.ContentService = &mockContentService{}
	}
	if svcs.ProjectService == nil {
		svcs.ProjectService = &mockProjectService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{info: models.NewAppBuildInfo("test", "", "")}
	}
	return NewHandler(svcs, testServerConfig, logger.Nop())
}

func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}
