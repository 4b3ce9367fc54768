package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-portfolio/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScreen records the contexts and payloads it was entered with.
type stubScreen struct {
	name     string
	ctxs     []context.Context
	payloads []any
	msgs     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { return nil }

func (s *stubScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}

func (s *stubScreen) View() string { return "screen " + s.name }

func (s *stubScreen) enter(ctx context.Context, payload any) tea.Cmd {
	s.ctxs = append(s.ctxs, ctx)
	s.payloads = append(s.payloads, payload)
	return nil
}

func newTestRoot() (RootModel, *stubScreen, *stubScreen) {
	sections := &stubScreen{name: pageSections}
	projects := &stubScreen{name: pageProjects}
	root := NewRootModel(context.Background(), map[string]screen{
		pageSections: sections,
		pageProjects: projects,
	}, pageSections, models.NewAppBuildInfo("1.0.0", "", "abc"))
	return root, sections, projects
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRoot_InitOpensStartPage(t *testing.T) {
	root, sections, _ := newTestRoot()

	nav := findMsg[NavigateTo](t, root.Init())
	assert.Equal(t, pageSections, nav.Page)

	root, _ = update(t, root, nav)
	assert.Equal(t, "screen sections", root.View())
	require.Len(t, sections.ctxs, 1)
}

func TestRoot_LeavingCancelsScreenContext(t *testing.T) {
	root, sections, projects := newTestRoot()

	root, _ = update(t, root, NavigateTo{Page: pageSections})
	root, _ = update(t, root, NavigateTo{Page: pageProjects, Payload: projectsRef{isAdmin: true}})

	require.Len(t, sections.ctxs, 1)
	require.Len(t, projects.ctxs, 1)
	assert.ErrorIs(t, sections.ctxs[0].Err(), context.Canceled)
	assert.NoError(t, projects.ctxs[0].Err())
	assert.Equal(t, projectsRef{isAdmin: true}, projects.payloads[0])

	// coming back gives a fresh context
	root, _ = update(t, root, NavigateTo{Page: pageSections})
	require.Len(t, sections.ctxs, 2)
	assert.NoError(t, sections.ctxs[1].Err())
	assert.ErrorIs(t, projects.ctxs[0].Err(), context.Canceled)
}

func TestRoot_UnknownPageIgnored(t *testing.T) {
	root, sections, _ := newTestRoot()
	root, _ = update(t, root, NavigateTo{Page: pageSections})

	root, _ = update(t, root, NavigateTo{Page: "nowhere"})

	assert.Equal(t, "screen sections", root.View())
	assert.NoError(t, sections.ctxs[0].Err())
}

func TestRoot_DelegatesToCurrent(t *testing.T) {
	root, sections, _ := newTestRoot()
	root, _ = update(t, root, NavigateTo{Page: pageSections})

	_, _ = update(t, root, keyRunes("j"))

	require.Len(t, sections.msgs, 1)
	assert.Equal(t, keyRunes("j"), sections.msgs[0])
}

func TestRoot_CtrlCQuits(t *testing.T) {
	root, sections, _ := newTestRoot()
	root, _ = update(t, root, NavigateTo{Page: pageSections})

	root, cmd := update(t, root, keyType(tea.KeyCtrlC))

	assert.True(t, root.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, runCmd(t, cmd))
	assert.ErrorIs(t, sections.ctxs[0].Err(), context.Canceled)
}

func TestRoot_QuitFromPage(t *testing.T) {
	root, _, _ := newTestRoot()
	root, _ = update(t, root, NavigateTo{Page: pageSections})

	root, cmd := update(t, root, quitMsg{})

	assert.False(t, root.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, runCmd(t, cmd))
}

func TestRoot_BuildInfoOnlyOnSections(t *testing.T) {
	root, sections, _ := newTestRoot()
	root, _ = update(t, root, NavigateTo{Page: pageSections})

	root, _ = update(t, root, keyRunes("v"))
	assert.Contains(t, root.View(), "BUILD INFO")
	assert.Contains(t, root.View(), "1.0.0")
	assert.Contains(t, root.View(), "N/A")

	// keys do not reach the page behind the overlay
	root, _ = update(t, root, keyRunes("j"))
	assert.Empty(t, sections.msgs)

	root, _ = update(t, root, keyType(tea.KeyEsc))
	assert.Equal(t, "screen sections", root.View())

	root, _ = update(t, root, NavigateTo{Page: pageProjects})
	root, _ = update(t, root, keyRunes("v"))
	assert.Equal(t, "screen projects", root.View())
}
