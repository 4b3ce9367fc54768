package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/tui"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionService == nil {
		return nil, errors.New("client services are not initialised")
	}
	if ui == nil {
		return nil, errors.New("ui is not initialised")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run restores the persisted session and hands the terminal to the UI
// until the user quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	session, err := a.services.SessionService.Restore(ctx)
	if err != nil {
		// a broken session file must not lock the user out of read access
		a.logger.Warn().Err(err).Msg("restore session failed, starting signed out")
	} else if session.Email != "" {
		a.logger.Info().Str("email", session.Email).Bool("admin", session.IsAdmin()).Msg("session restored")
	}

	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
