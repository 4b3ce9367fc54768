package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-portfolio/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storedLinks = []models.SocialLink{
	{ID: 1, Platform: "github", URL: "https://github.com/jane"},
	{ID: 2, Platform: "linkedin", URL: "https://linkedin.com/in/jane"},
}

func TestLinksEditor_HiddenForVisitors(t *testing.T) {
	m := newLinksEditor(storedLinks, false, nil)

	m, _ = m.Update(keyRunes("s"))

	assert.False(t, m.Open())
	assert.Empty(t, m.View())
}

func TestLinksEditor_EditAndSave(t *testing.T) {
	var saved []models.SocialLink
	m := newLinksEditor(storedLinks, true, func(links []models.SocialLink) tea.Cmd {
		saved = links
		return func() tea.Msg { return linksSaveDoneMsg{} }
	})

	m, _ = m.Update(keyRunes("s"))
	require.True(t, m.Open())

	// second row: switch platform and append to the url
	m, _ = m.Update(keyType(tea.KeyDown))
	m, _ = m.Update(keyType(tea.KeyCtrlP))
	m, _ = m.Update(keyRunes("-dev"))

	// new row
	m, _ = m.Update(keyType(tea.KeyCtrlN))
	m, _ = m.Update(keyRunes("https://jane.dev"))

	m, cmd := m.Update(keyType(tea.KeyCtrlS))
	require.NotNil(t, cmd)

	assert.Equal(t, []models.SocialLink{
		{ID: 1, Platform: "github", URL: "https://github.com/jane"},
		{ID: 2, Platform: "twitter", URL: "https://linkedin.com/in/jane-dev"},
		{ID: 3, Platform: "github", URL: "https://jane.dev"},
	}, saved)

	m, tick := m.Update(runCmd(t, cmd))
	require.NotNil(t, tick)
	assert.Contains(t, m.View(), "Links saved ✓")

	m, _ = m.Update(linksCollapseMsg{seq: m.seq})
	assert.False(t, m.Open())
}

func TestLinksEditor_Remove(t *testing.T) {
	m := newLinksEditor(storedLinks, true, nil)
	m, _ = m.Update(keyRunes("s"))

	m, _ = m.Update(keyType(tea.KeyCtrlD))

	assert.Equal(t, []models.SocialLink{storedLinks[1]}, m.Draft())
	assert.Equal(t, storedLinks[1].URL, m.url.Value())

	m, _ = m.Update(keyType(tea.KeyCtrlD))
	m, _ = m.Update(keyType(tea.KeyCtrlD))
	assert.Empty(t, m.Draft())
}

func TestLinksEditor_CancelKeepsStored(t *testing.T) {
	m := newLinksEditor(storedLinks, true, nil)
	m, _ = m.Update(keyRunes("s"))
	m, _ = m.Update(keyType(tea.KeyCtrlD))

	m, _ = m.Update(keyType(tea.KeyEsc))
	assert.False(t, m.Open())

	m, _ = m.Update(keyRunes("s"))
	assert.Equal(t, storedLinks, m.Draft())
}

func TestLinksEditor_FailedSave(t *testing.T) {
	m := newLinksEditor(storedLinks, true, func([]models.SocialLink) tea.Cmd {
		return func() tea.Msg { return linksSaveDoneMsg{err: errors.New("boom")} }
	})
	m, _ = m.Update(keyRunes("s"))
	m, cmd := m.Update(keyType(tea.KeyCtrlS))
	m, _ = m.Update(runCmd(t, cmd))

	assert.True(t, m.Open())
	assert.Contains(t, m.View(), "boom")
}

func TestNextPlatform(t *testing.T) {
	assert.Equal(t, "linkedin", nextPlatform("github"))
	assert.Equal(t, "github", nextPlatform("link"))
	assert.Equal(t, "github", nextPlatform("myspace"))
}

func TestNextLinkID(t *testing.T) {
	assert.Equal(t, int64(1), nextLinkID(nil))
	assert.Equal(t, int64(8), nextLinkID([]models.SocialLink{{ID: 7}, {ID: 3}}))
}
