package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, admin credential verification, the
// advisory role lookup and the JWT token lifecycle, using a UserRepository
// for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks email format and password length on registration.
	validator validators.Validator

	// hashCost is the bcrypt cost applied to new passwords.
	hashCost int

	// disableAdminRegistration rejects registrations requesting the admin role.
	disableAdminRegistration bool

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:           userRepository,
		validator:                validators.NewUserValidator(),
		hashCost:                 cfg.PasswordHashCost,
		disableAdminRegistration: cfg.DisableAdminRegistration,
		tokenSignKey:             cfg.TokenSignKey,
		tokenIssuer:              cfg.TokenIssuer,
		tokenDuration:            cfg.TokenDuration,
		logger:                   logger,
	}
}

// RegisterUser creates a new account.
//
// The requested role is coerced: only the exact value "admin" yields an
// administrator, anything else a regular user. The password is stored as a
// bcrypt hash and never returned.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the email or the password is empty.
//   - validators.FieldErrors if the email is malformed or the password is
//     shorter than six characters.
//   - ErrAdminRegistrationDisabled if an admin was requested while admin
//     registration is turned off.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("email", user.Email).Msg("registration rejected by validation")
		return models.User{}, err
	}

	user.Role = models.ParseRole(string(user.Role))
	if user.Role.IsAdmin() && a.disableAdminRegistration {
		log.Warn().Str("email", user.Email).Msg("admin registration attempted while disabled")
		return models.User{}, ErrAdminRegistrationDisabled
	}

	hash, err := utils.HashPassword(user.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an administrator.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if the email or the password is empty.
//   - ErrInvalidCredentials if the email is unknown or the password does not
//     match. An unknown email still pays for one bcrypt comparison.
//   - ErrAccessDenied if the credentials match a non-admin account.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Error().Str("email", email).Msg("invalid credentials data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.CheckPasswordAgainstDummy(credentials.Password)
			log.Info().Str("email", email).Msg("login for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, credentials.Password) {
		log.Info().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.Role.IsAdmin() {
		log.Info().Int64("id", foundUser.UserID).Msg("non-admin login refused")
		return models.User{}, ErrAccessDenied
	}

	return foundUser, nil
}

// CheckRole reports whether email belongs to an administrator. It performs
// no password check and must never gate a write. An unknown email yields
// Found=false without an error.
func (a *authService) CheckRole(ctx context.Context, email string) (models.RoleCheck, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return models.RoleCheck{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.RoleCheck{Email: email}, nil
		}
		log.Err(err).Str("email", email).Msg("role lookup failed")
		return models.RoleCheck{}, fmt.Errorf("role lookup failed: %w", err)
	}

	return models.RoleCheck{
		Email:   foundUser.Email,
		Found:   true,
		IsAdmin: foundUser.Role.IsAdmin(),
	}, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's role, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
