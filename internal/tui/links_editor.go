package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const linksConfirmDuration = 1500 * time.Millisecond

// LinksSaveFunc persists the full list of social links. The returned
// command must end in a linksSaveDoneMsg for the editor.
type LinksSaveFunc func(links []models.SocialLink) tea.Cmd

type linksSaveDoneMsg struct {
	err error
}

type linksCollapseMsg struct {
	seq int
}

// linksEditorModel edits the contact section's social links: the selected
// row's url is always in the input, platforms cycle through
// [models.SocialPlatforms].
type linksEditorModel struct {
	links []models.SocialLink
	draft []models.SocialLink
	idx   int
	url   textinput.Model

	isAdmin bool
	open    bool
	saving  bool
	saved   bool
	errMsg  string

	onSave LinksSaveFunc
	seq    int
}

func newLinksEditor(links []models.SocialLink, isAdmin bool, onSave LinksSaveFunc) linksEditorModel {
	url := textinput.New()
	url.Placeholder = "https://"
	url.Width = inputWidth
	url.CharLimit = 0

	return linksEditorModel{
		links:   cloneLinks(links),
		url:     url,
		isAdmin: isAdmin,
		onSave:  onSave,
	}
}

func (m linksEditorModel) Open() bool {
	return m.open
}

func (m *linksEditorModel) SetAdmin(isAdmin bool) {
	m.isAdmin = isAdmin
	if !isAdmin {
		m.open = false
	}
}

// SetLinks replaces the last known links. An open draft is re-seeded.
func (m *linksEditorModel) SetLinks(links []models.SocialLink) {
	m.links = cloneLinks(links)
	if m.open {
		m.draft = cloneLinks(links)
		m.selectLink(min(m.idx, len(m.draft)-1))
	}
}

// Draft returns the links being edited, including the unsaved url input.
func (m linksEditorModel) Draft() []models.SocialLink {
	draft := cloneLinks(m.draft)
	if m.idx >= 0 && m.idx < len(draft) {
		draft[m.idx].URL = strings.TrimSpace(m.url.Value())
	}
	return draft
}

func (m linksEditorModel) Update(msg tea.Msg) (linksEditorModel, tea.Cmd) {
	if !m.isAdmin {
		return m, nil
	}

	switch msg := msg.(type) {
	case linksSaveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.saved = true
		m.seq++
		seq := m.seq
		return m, tea.Tick(linksConfirmDuration, func(time.Time) tea.Msg {
			return linksCollapseMsg{seq: seq}
		})
	case linksCollapseMsg:
		if msg.seq == m.seq && m.saved {
			m.saved = false
			m.open = false
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.open {
			var cmd tea.Cmd
			m.url, cmd = m.url.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if !m.open {
		if key.Matches(keyMsg, keys.links) {
			m.open = true
			m.saved = false
			m.errMsg = ""
			m.draft = cloneLinks(m.links)
			m.selectLink(0)
			return m, m.url.Focus()
		}
		return m, nil
	}

	if m.saving && !key.Matches(keyMsg, keys.esc) {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.saving {
			return m, nil
		}
		m.seq++
		m.saved = false
		m.open = false
		m.errMsg = ""
		m.draft = nil
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.onSave == nil {
			return m, nil
		}
		m.saving = true
		m.errMsg = ""
		return m, m.onSave(m.Draft())
	case key.Matches(keyMsg, keys.addLink):
		m.draft = m.Draft()
		m.draft = append(m.draft, models.SocialLink{
			ID:       nextLinkID(m.draft),
			Platform: models.SocialPlatforms[0],
		})
		m.selectLink(len(m.draft) - 1)
		return m, nil
	case key.Matches(keyMsg, keys.dropLink):
		if len(m.draft) == 0 {
			return m, nil
		}
		m.draft = append(m.draft[:m.idx:m.idx], m.draft[m.idx+1:]...)
		m.selectLink(min(m.idx, len(m.draft)-1))
		return m, nil
	case key.Matches(keyMsg, keys.platform):
		if len(m.draft) == 0 {
			return m, nil
		}
		m.draft[m.idx].Platform = nextPlatform(m.draft[m.idx].Platform)
		return m, nil
	case key.Matches(keyMsg, listUp):
		if m.idx > 0 {
			m.draft = m.Draft()
			m.selectLink(m.idx - 1)
		}
		return m, nil
	case key.Matches(keyMsg, listDown):
		if m.idx < len(m.draft)-1 {
			m.draft = m.Draft()
			m.selectLink(m.idx + 1)
		}
		return m, nil
	}

	if len(m.draft) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.url, cmd = m.url.Update(msg)
	return m, cmd
}

// selectLink points the url input at draft[i]; -1 leaves nothing selected.
func (m *linksEditorModel) selectLink(i int) {
	m.idx = max(i, 0)
	if i < 0 || i >= len(m.draft) {
		m.url.SetValue("")
		return
	}
	m.url.SetValue(m.draft[i].URL)
	m.url.CursorEnd()
}

func (m linksEditorModel) View() string {
	if !m.isAdmin {
		return ""
	}
	if !m.open {
		return helpStyle.Render("s: edit social links")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Social links"))
	b.WriteString("\n\n")
	if len(m.draft) == 0 {
		b.WriteString("  no links yet\n")
	}
	for i, link := range m.draft {
		b.WriteString(cursor(i == m.idx))
		b.WriteString(fmt.Sprintf("%-10s ", link.Platform))
		if i == m.idx {
			b.WriteString(m.url.View())
		} else {
			b.WriteString(valueOrDash(link.URL))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.saved:
		b.WriteString(successStyle.Render("Links saved ✓"))
		b.WriteString("\n")
	case m.saving:
		b.WriteString("Saving...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: link │ ctrl+n: add │ ctrl+d: remove │ ctrl+p: platform │ ctrl+s: save │ esc: cancel"))
	return panelStyle.Render(b.String())
}

func nextPlatform(current string) string {
	for i, p := range models.SocialPlatforms {
		if p == current {
			return models.SocialPlatforms[(i+1)%len(models.SocialPlatforms)]
		}
	}
	return models.SocialPlatforms[0]
}

func nextLinkID(links []models.SocialLink) int64 {
	var id int64
	for _, l := range links {
		id = max(id, l.ID)
	}
	return id + 1
}

func cloneLinks(links []models.SocialLink) []models.SocialLink {
	return append([]models.SocialLink(nil), links...)
}
