package tui

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin    = "login"
	pageSections = "sections"
	pageSection  = "section"
	pageProjects = "projects"
)

// screen is a page of the client. enter runs every time the page becomes
// active; ctx is cancelled as soon as the page is left.
type screen interface {
	tea.Model
	enter(ctx context.Context, payload any) tea.Cmd
}

// RootModel is a TUI router:
// 1) keeps active page and its context
// 2) handles global Ctrl+C quit and the build info overlay
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx context.Context

	pages       map[string]screen
	current     screen
	currentName string
	startPage   string

	cancelScreen context.CancelFunc

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages; startPage opens on Init.
func NewRootModel(ctx context.Context, pages map[string]screen, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		pages:     pages,
		startPage: startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	start := r.startPage
	return func() tea.Msg { return NavigateTo{Page: start} }
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			r.leaveScreen()
			return r, tea.Quit
		case "v":
			if r.currentName == pageSections {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.leaveScreen()
		ctx, cancel := context.WithCancel(r.ctx)
		r.cancelScreen = cancel

		r.showBuildInfo = false
		r.current = next
		r.currentName = nav.Page
		return r, next.enter(ctx, nav.Payload)
	}

	if _, ok := msg.(quitMsg); ok {
		r.leaveScreen()
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	if s, ok := updated.(screen); ok {
		r.current = s
		r.pages[r.currentName] = s
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("PORTFOLIO ADMIN", "", "")
	}
	return r.current.View()
}

func (r *RootModel) leaveScreen() {
	if r.cancelScreen != nil {
		r.cancelScreen()
		r.cancelScreen = nil
	}
}

// quitMsg ends the program from inside a page.
type quitMsg struct{}

func quit() tea.Msg { return quitMsg{} }

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
