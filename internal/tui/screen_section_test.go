package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func heroSection(version int64, title string) models.Section {
	data := models.DefaultSectionData(models.SectionHero)
	data["title"] = title
	return models.Section{Name: models.SectionHero, Data: data, Version: version}
}

func TestSection_EnterShowsCurrentThenLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mock.NewMockClientContentService(ctrl)
	content.EXPECT().Current(models.SectionHero).Return(heroSection(0, "Software Engineer"))
	content.EXPECT().Load(gomock.Any(), models.SectionHero).Return(heroSection(4, "Staff Engineer"), nil)

	m := newSectionModel(content)
	cmd := m.enter(context.Background(), sectionRef{name: models.SectionHero})

	assert.Contains(t, m.View(), "Software Engineer")
	assert.Contains(t, m.View(), "loading...")

	m.Update(findMsg[sectionLoadedMsg](t, cmd))

	view := m.View()
	assert.Contains(t, view, "SECTION: HERO")
	assert.Contains(t, view, "version 4")
	assert.Contains(t, view, "Staff Engineer")
	assert.NotContains(t, view, "loading...")
}

func TestSection_LoadFailureKeepsLastKnown(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mock.NewMockClientContentService(ctrl)
	content.EXPECT().Current(models.SectionHero).Return(heroSection(2, "Software Engineer"))
	content.EXPECT().Load(gomock.Any(), models.SectionHero).Return(heroSection(2, "Software Engineer"), errors.New("boom"))

	m := newSectionModel(content)
	m.Update(findMsg[sectionLoadedMsg](t, m.enter(context.Background(), sectionRef{name: models.SectionHero})))

	view := m.View()
	assert.Contains(t, view, "Showing last known content: boom")
	assert.Contains(t, view, "Software Engineer")
}

func TestSection_EditAndSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mock.NewMockClientContentService(ctrl)
	content.EXPECT().Current(models.SectionHero).Return(heroSection(1, "Software Engineer"))
	content.EXPECT().Load(gomock.Any(), models.SectionHero).Return(heroSection(1, "Software Engineer"), nil)
	content.EXPECT().Save(gomock.Any(), models.SectionHero, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, edits models.SectionData) (models.Section, error) {
			assert.Equal(t, "Software Engineer!", edits["title"])
			assert.Contains(t, edits, "name")
			assert.Contains(t, edits, "description")
			return heroSection(2, "Software Engineer!"), nil
		})

	m := newSectionModel(content)
	m.Update(findMsg[sectionLoadedMsg](t, m.enter(context.Background(), sectionRef{name: models.SectionHero, isAdmin: true})))

	m.Update(keyRunes("e"))
	require.True(t, m.editor.Open())

	// "q" is typed into the field while the editor is open
	_, cmd := m.Update(keyRunes("q"))
	_, isNav := searchMsg[NavigateTo](cmd)
	assert.False(t, isNav)
	m.Update(keyType(tea.KeyBackspace))

	m.Update(keyRunes("!"))
	_, cmd = m.Update(keyType(tea.KeyCtrlS))
	m.Update(findMsg[sectionSavedMsg](t, cmd))

	assert.Equal(t, int64(2), m.section.Version)
	view := m.View()
	assert.Contains(t, view, "Saved ✓")
	assert.Contains(t, view, "version 2")
}

func TestSection_VisitorCannotEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mock.NewMockClientContentService(ctrl)
	content.EXPECT().Current(models.SectionHero).Return(heroSection(1, "Software Engineer"))
	content.EXPECT().Load(gomock.Any(), models.SectionHero).Return(heroSection(1, "Software Engineer"), nil)

	m := newSectionModel(content)
	m.Update(findMsg[sectionLoadedMsg](t, m.enter(context.Background(), sectionRef{name: models.SectionHero})))

	m.Update(keyRunes("e"))
	assert.False(t, m.editor.Open())

	_, cmd := m.Update(keyType(tea.KeyEsc))
	assert.Equal(t, pageSections, findMsg[NavigateTo](t, cmd).Page)
}

func TestSection_StaleLoadIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mock.NewMockClientContentService(ctrl)
	content.EXPECT().Current(models.SectionHero).Return(heroSection(1, "Software Engineer")).Times(2)
	content.EXPECT().Load(gomock.Any(), models.SectionHero).Return(heroSection(1, "Software Engineer"), nil).AnyTimes()

	m := newSectionModel(content)
	first, cancel := context.WithCancel(context.Background())
	m.enter(first, sectionRef{name: models.SectionHero})
	cancel()
	m.enter(context.Background(), nil)

	m.Update(sectionLoadedMsg{ctx: first, section: heroSection(9, "Old")})

	assert.True(t, m.loading)
	assert.Equal(t, int64(1), m.section.Version)
	assert.Equal(t, models.SectionHero, m.name)
}

func TestSection_ContactLinks(t *testing.T) {
	contact := models.Section{
		Name: models.SectionContact,
		Data: models.SectionData{
			"title": "Contact",
			socialLinksKey: []any{
				map[string]any{"id": float64(1), "platform": "github", "url": "https://github.com/x"},
			},
		},
		Version: 3,
	}

	ctrl := gomock.NewController(t)
	content := mock.NewMockClientContentService(ctrl)
	content.EXPECT().Current(models.SectionContact).Return(contact)
	content.EXPECT().Load(gomock.Any(), models.SectionContact).Return(contact, nil)
	content.EXPECT().Save(gomock.Any(), models.SectionContact, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, edits models.SectionData) (models.Section, error) {
			require.Len(t, edits, 1)
			links, ok := edits[socialLinksKey].([]any)
			require.True(t, ok)
			assert.Len(t, links, 2)
			saved := contact
			saved.Version = 4
			return saved, nil
		})

	m := newSectionModel(content)
	m.Update(findMsg[sectionLoadedMsg](t, m.enter(context.Background(), sectionRef{name: models.SectionContact, isAdmin: true})))
	assert.Contains(t, m.View(), "https://github.com/x")

	m.Update(keyRunes("s"))
	require.True(t, m.links.Open())
	m.Update(keyType(tea.KeyCtrlN))

	_, cmd := m.Update(keyType(tea.KeyCtrlS))
	m.Update(findMsg[linksSavedMsg](t, cmd))

	assert.Contains(t, m.View(), "Links saved ✓")
}

func TestSection_CopyText(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	ctrl := gomock.NewController(t)
	content := mock.NewMockClientContentService(ctrl)
	content.EXPECT().Current(models.SectionHero).Return(heroSection(1, "Software Engineer"))
	content.EXPECT().Load(gomock.Any(), models.SectionHero).Return(heroSection(1, "Software Engineer"), nil)

	m := newSectionModel(content)
	m.Update(findMsg[sectionLoadedMsg](t, m.enter(context.Background(), sectionRef{name: models.SectionHero})))

	m.Update(keyRunes("c"))

	assert.Contains(t, copied, "Software Engineer")
	assert.Contains(t, copied, "M.khalil Mejri")
}
