package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/tui"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	err    error
	called bool
}

func (f *fakeUI) Run(context.Context) error {
	f.called = true
	return f.err
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientSessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)

	app, err := NewApp(&service.ClientServices{SessionService: session}, ui, logger.Nop())
	require.NoError(t, err)
	return app, session
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	ctrl := gomock.NewController(t)
	_, err = NewApp(&service.ClientServices{SessionService: mock.NewMockClientSessionService(ctrl)}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestRun_RestoresThenRunsUI(t *testing.T) {
	ui := &fakeUI{}
	app, session := newTestApp(t, ui)

	session.EXPECT().Restore(gomock.Any()).
		Return(models.Session{Email: "admin@x.com", Role: models.RoleAdmin, Token: "t"}, nil)

	require.NoError(t, app.run(context.Background()))
	assert.True(t, ui.called)
}

func TestRun_RestoreFailureStillRunsUI(t *testing.T) {
	ui := &fakeUI{}
	app, session := newTestApp(t, ui)

	session.EXPECT().Restore(gomock.Any()).Return(models.Session{}, errors.New("corrupt session file"))

	require.NoError(t, app.run(context.Background()))
	assert.True(t, ui.called)
}

func TestRun_UserQuitIsNotAnError(t *testing.T) {
	app, session := newTestApp(t, &fakeUI{err: tui.ErrUserQuit})
	session.EXPECT().Restore(gomock.Any()).Return(models.Session{}, nil)

	assert.NoError(t, app.run(context.Background()))
}

func TestRun_UIErrorIsWrapped(t *testing.T) {
	uiErr := errors.New("terminal gone")
	app, session := newTestApp(t, &fakeUI{err: uiErr})
	session.EXPECT().Restore(gomock.Any()).Return(models.Session{}, nil)

	err := app.run(context.Background())
	assert.ErrorIs(t, err, uiErr)
}
