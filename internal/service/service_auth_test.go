package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "go-portfolio-test",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
}

// newTestAuthSvc is a helper building authService over a mocked repository
func newTestAuthSvc(t *testing.T, cfg config.App) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, cfg, logger.Nop()), repo
}

func storedUser(t *testing.T, role models.Role, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{UserID: 1, Email: "a@x.com", PasswordHash: hash, Role: role}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "a@x.com", u.Email)
			assert.Equal(t, models.RoleAdmin, u.Role)
			assert.Empty(t, u.Password, "plaintext must not reach the store")
			assert.True(t, utils.CheckPassword(u.PasswordHash, "secret1"))
			u.UserID = 9
			return u, nil
		},
	)

	created, err := svc.RegisterUser(ctx, models.User{Email: "a@x.com", Password: "secret1", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.UserID)
}

func TestAuthService_RegisterUser_RoleCoercion(t *testing.T) {
	for _, requested := range []models.Role{"", "user", "Admin", "superuser"} {
		t.Run(string(requested), func(t *testing.T) {
			svc, repo := newTestAuthSvc(t, testAppConfig)

			repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, u models.User) (models.User, error) {
					assert.Equal(t, models.RoleUser, u.Role)
					return u, nil
				},
			)

			_, err := svc.RegisterUser(context.Background(), models.User{Email: "a@x.com", Password: "secret1", Role: requested})
			require.NoError(t, err)
		})
	}
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "  ", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_ValidationJoinsMessages(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "not-an-email", Password: "123"})

	var fieldErrs validators.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
	assert.ErrorIs(t, err, validators.ErrShortPassword)
	assert.Equal(t, "Please provide a valid email, Password must be at least 6 characters long", err.Error())
}

func TestAuthService_RegisterUser_AdminDisabled(t *testing.T) {
	cfg := testAppConfig
	cfg.DisableAdminRegistration = true
	svc, repo := newTestAuthSvc(t, cfg)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "a@x.com", Password: "secret1", Role: "admin"})
	assert.ErrorIs(t, err, ErrAdminRegistrationDisabled)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{Email: "b@x.com", Role: models.RoleUser}, nil)
	_, err = svc.RegisterUser(context.Background(), models.User{Email: "b@x.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)
	user := storedUser(t, models.RoleAdmin, "secret1")

	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(user, nil)

	got, err := svc.Login(context.Background(), models.Credentials{Email: " a@x.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)
	user := storedUser(t, models.RoleAdmin, "secret1")

	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(user, nil)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.com").Return(models.User{}, store.ErrUserNotFound)

	_, wrongPassword := svc.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "wrong!"})
	_, unknownEmail := svc.Login(context.Background(), models.Credentials{Email: "ghost@x.com", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Login_NonAdminDenied(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)
	user := storedUser(t, models.RoleUser, "secret1")

	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(user, nil)

	got, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, got.Email)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{}, store.ErrStoreUnavailable)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

// ── CheckRole ────────────────────────────────────────────────────────────────

func TestAuthService_CheckRole(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "admin@x.com").Return(models.User{Email: "admin@x.com", Role: models.RoleAdmin}, nil)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.com").Return(models.User{}, store.ErrUserNotFound)

	check, err := svc.CheckRole(context.Background(), "admin@x.com")
	require.NoError(t, err)
	assert.True(t, check.Found)
	assert.True(t, check.IsAdmin)

	check, err = svc.CheckRole(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, check.Found)
	assert.False(t, check.IsAdmin)

	_, err = svc.CheckRole(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Role: models.RoleAdmin})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
}

func TestAuthService_ParseToken_Rejected(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig)
	otherCfg := testAppConfig
	otherCfg.TokenSignKey = "another-key"
	other, _ := newTestAuthSvc(t, otherCfg)

	forged, err := other.CreateToken(context.Background(), models.User{UserID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), forged.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_MissingKey(t *testing.T) {
	cfg := testAppConfig
	cfg.TokenSignKey = ""
	svc, _ := newTestAuthSvc(t, cfg)

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
