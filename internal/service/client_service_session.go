package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

type clientSessionService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

func NewClientSessionService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	stored, err := s.sessions.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, nil
		}
		return models.Session{}, err
	}

	if stored.Token != "" && utils.TokenExpired(stored.Token, s.now()) {
		s.logger.Info().Str("email", stored.Email).Msg("stored token expired, sign in again")
		stored.Token = ""
		if err := s.sessions.SaveSession(ctx, stored); err != nil {
			s.logger.Warn().Err(err).Msg("failed to drop expired token")
		}
	}

	// advisory only: the server re-verifies the token on every write
	if stored.Email != "" {
		isAdmin, err := s.adapter.CheckRole(ctx, stored.Email)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("email", stored.Email).Msg("role check failed, keeping stored role")
		case !isAdmin:
			stored.Role = models.RoleUser
		}
	}

	s.mu.Lock()
	s.session = stored
	s.mu.Unlock()

	return stored, nil
}

func (s *clientSessionService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	result, err := s.adapter.Login(ctx, credentials)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{
		Email:   result.User.Email,
		Role:    result.User.Role,
		Token:   result.Token,
		SavedAt: s.now(),
	}
	if claims, err := utils.ParseUnverifiedClaims(result.Token); err == nil && claims.Role != "" {
		session.Role = claims.Role
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Warn().Err(err).Msg("session not persisted, it lasts until exit")
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info().Str("email", session.Email).Msg("signed in")
	return session, nil
}

func (s *clientSessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *clientSessionService) IsAdmin() bool {
	return s.Current().IsAdmin()
}

func (s *clientSessionService) Token() string {
	return s.Current().Token
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	email := s.session.Email
	s.session = models.Session{}
	s.mu.Unlock()

	if err := s.sessions.DeleteSession(ctx); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("signed out")
	return nil
}
