package tui

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the sections overview and blocks until the user quits. All
// screen contexts derive from ctx.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.pages(), pageSections, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages() map[string]screen {
	return map[string]screen{
		pageLogin:    newLoginModel(t.services.SessionService),
		pageSections: newSectionsModel(t.services.SessionService, t.services.ContentService),
		pageSection:  newSectionModel(t.services.ContentService),
		pageProjects: newProjectsModel(t.services.ProjectService),
	}
}
