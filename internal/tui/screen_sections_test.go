package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSectionsFixture(t *testing.T) (*sectionsModel, *mock.MockClientSessionService, *mock.MockClientContentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	content := mock.NewMockClientContentService(ctrl)
	content.EXPECT().Current(gomock.Any()).DoAndReturn(func(name string) models.Section {
		return models.Section{Name: name, Data: models.DefaultSectionData(name)}
	}).AnyTimes()
	return newSectionsModel(session, content), session, content
}

func TestSections_EnterLoadsEverySection(t *testing.T) {
	m, session, content := newSectionsFixture(t)
	session.EXPECT().Current().Return(models.Session{Email: "admin@example.com", Role: models.RoleAdmin, Token: "t"}).AnyTimes()
	content.EXPECT().LoadAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, names ...string) (models.ContentSnapshot, error) {
			assert.Equal(t, models.KnownSections, names)
			return models.ContentSnapshot{
				IsAdmin: true,
				Failed:  map[string]error{models.SectionSkills: service.ErrServerUnavailable},
			}, nil
		})

	ctx := context.Background()
	loaded := findMsg[contentLoadedMsg](t, m.enter(ctx, notice("Signed in as admin@example.com")))
	assert.True(t, m.loading)

	m.Update(loaded)

	assert.False(t, m.loading)
	assert.True(t, m.isAdmin)
	view := m.View()
	assert.Contains(t, view, "administrator")
	assert.Contains(t, view, "Signed in as admin@example.com")
	assert.Contains(t, view, "Software Engineer")
	assert.Contains(t, view, "(defaults: Network is down or the server is unavailable)")
	assert.Contains(t, view, "l: sign out")
}

func TestSections_StaleResultIgnored(t *testing.T) {
	m, session, content := newSectionsFixture(t)
	session.EXPECT().Current().Return(models.Session{}).AnyTimes()
	content.EXPECT().LoadAll(gomock.Any(), gomock.Any()).Return(models.ContentSnapshot{}, nil).AnyTimes()

	first, cancel := context.WithCancel(context.Background())
	m.enter(first, nil)
	cancel()
	m.enter(context.Background(), nil)

	m.Update(contentLoadedMsg{ctx: first, snapshot: models.ContentSnapshot{IsAdmin: true}})

	assert.True(t, m.loading)
	assert.False(t, m.isAdmin)
}

func TestSections_Navigation(t *testing.T) {
	m, session, content := newSectionsFixture(t)
	session.EXPECT().Current().Return(models.Session{}).AnyTimes()
	content.EXPECT().LoadAll(gomock.Any(), gomock.Any()).Return(models.ContentSnapshot{}, nil)

	ctx := context.Background()
	m.Update(findMsg[contentLoadedMsg](t, m.enter(ctx, nil)))

	m.Update(keyType(tea.KeyDown))
	_, cmd := m.Update(keyType(tea.KeyEnter))
	nav := findMsg[NavigateTo](t, cmd)
	assert.Equal(t, pageSection, nav.Page)
	assert.Equal(t, sectionRef{name: models.SectionAbout}, nav.Payload)

	_, cmd = m.Update(keyRunes("p"))
	nav = findMsg[NavigateTo](t, cmd)
	assert.Equal(t, pageProjects, nav.Page)
	assert.Equal(t, projectsRef{}, nav.Payload)

	_, cmd = m.Update(keyRunes("a"))
	assert.Equal(t, pageLogin, findMsg[NavigateTo](t, cmd).Page)

	_, cmd = m.Update(keyRunes("q"))
	assert.IsType(t, quitMsg{}, runCmd(t, cmd))
}

func TestSections_Logout(t *testing.T) {
	m, session, content := newSectionsFixture(t)
	session.EXPECT().Current().Return(models.Session{Email: "admin@example.com"}).AnyTimes()
	content.EXPECT().LoadAll(gomock.Any(), gomock.Any()).Return(models.ContentSnapshot{IsAdmin: true}, nil)
	session.EXPECT().Logout(gomock.Any()).Return(nil)

	ctx := context.Background()
	m.Update(findMsg[contentLoadedMsg](t, m.enter(ctx, nil)))
	require.True(t, m.isAdmin)

	_, cmd := m.Update(keyRunes("l"))
	m.Update(findMsg[loggedOutMsg](t, cmd))

	assert.False(t, m.isAdmin)
	assert.Contains(t, m.View(), "Signed out")
}

func TestSections_LogoutWithoutSessionIsNoop(t *testing.T) {
	m, session, content := newSectionsFixture(t)
	session.EXPECT().Current().Return(models.Session{}).AnyTimes()
	content.EXPECT().LoadAll(gomock.Any(), gomock.Any()).Return(models.ContentSnapshot{}, nil)

	m.Update(findMsg[contentLoadedMsg](t, m.enter(context.Background(), nil)))

	_, cmd := m.Update(keyRunes("l"))
	assert.Nil(t, cmd)
}

func TestSections_LoadErrorShown(t *testing.T) {
	m, session, content := newSectionsFixture(t)
	session.EXPECT().Current().Return(models.Session{}).AnyTimes()
	content.EXPECT().LoadAll(gomock.Any(), gomock.Any()).Return(models.ContentSnapshot{}, errors.New("boom"))

	m.Update(findMsg[contentLoadedMsg](t, m.enter(context.Background(), nil)))

	view := m.View()
	assert.Contains(t, view, "Error: boom")
	assert.Contains(t, view, "visitor (read only)")
}
