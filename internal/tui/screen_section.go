package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// sectionModel shows one section with its inline editor. The contact
// section also carries the social links editor.
type sectionModel struct {
	ctx     context.Context
	content service.ClientContentService

	name    string
	section models.Section
	isAdmin bool
	loading bool

	editor sectionEditorModel
	links  linksEditorModel

	errMsg string
}

func newSectionModel(content service.ClientContentService) *sectionModel {
	return &sectionModel{content: content}
}

func (m *sectionModel) Init() tea.Cmd {
	return nil
}

// enter shows the last known content at once and refetches it.
func (m *sectionModel) enter(ctx context.Context, payload any) tea.Cmd {
	ref, _ := payload.(sectionRef)
	if ref.name != "" {
		m.name = ref.name
		m.isAdmin = ref.isAdmin
	}

	m.ctx = ctx
	m.errMsg = ""
	m.section = m.content.Current(m.name)
	m.editor = newSectionEditor(fieldsForSection(m.section), m.isAdmin, m.saveFields)
	m.links = newLinksEditor(socialLinksFromData(m.section.Data), m.isAdmin && m.hasLinks(), m.saveLinks)
	m.loading = true
	return m.cmdLoad()
}

func (m *sectionModel) hasLinks() bool {
	return m.name == models.SectionContact
}

func (m *sectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sectionLoadedMsg:
		if msg.ctx != m.ctx {
			return m, nil
		}
		m.loading = false
		if msg.err != nil && !isCancelled(msg.err) {
			m.errMsg = "Showing last known content: " + humanizeError(msg.err)
		}
		m.setSection(msg.section)
		return m, nil
	case sectionSavedMsg:
		if msg.ctx != m.ctx {
			return m, nil
		}
		if msg.err == nil {
			m.setSection(msg.section)
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(editorSaveDoneMsg{err: msg.err})
		return m, cmd
	case linksSavedMsg:
		if msg.ctx != m.ctx {
			return m, nil
		}
		if msg.err == nil {
			m.setSection(msg.section)
		}
		var cmd tea.Cmd
		m.links, cmd = m.links.Update(linksSaveDoneMsg{err: msg.err})
		return m, cmd
	case editorCollapseMsg:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	case linksCollapseMsg:
		var cmd tea.Cmd
		m.links, cmd = m.links.Update(msg)
		return m, cmd
	}

	// an open panel owns the keyboard
	if m.editor.Open() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	if m.links.Open() {
		var cmd tea.Cmd
		m.links, cmd = m.links.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		return m, navigate(pageSections, nil)
	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.edit):
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	case key.Matches(keyMsg, keys.links):
		var cmd tea.Cmd
		m.links, cmd = m.links.Update(msg)
		return m, cmd
	case key.Matches(keyMsg, keys.copy):
		if err := copyToClipboard(sectionText(m.section)); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
		}
	}
	return m, nil
}

// setSection refreshes the view and re-seeds both editors.
func (m *sectionModel) setSection(section models.Section) {
	m.section = section
	m.editor.SetFields(fieldsForSection(section))
	m.links.SetLinks(socialLinksFromData(section.Data))
}

func (m *sectionModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("version %d", m.section.Version))
	if m.loading {
		b.WriteString("  loading...")
	}
	b.WriteString("\n\n")

	for _, f := range fieldsForSection(m.section) {
		b.WriteString(fmt.Sprintf("%-12s %s\n", f.Label+":", valueOrDash(f.Value)))
	}
	if extra := extraKeys(m.section); len(extra) > 0 {
		b.WriteString("\n")
		for _, line := range extra {
			b.WriteString(helpStyle.Render(line))
			b.WriteString("\n")
		}
	}
	if m.hasLinks() {
		b.WriteString("\nSocial links\n")
		links := socialLinksFromData(m.section.Data)
		if len(links) == 0 {
			b.WriteString("  -\n")
		}
		for _, link := range links {
			b.WriteString(fmt.Sprintf("  %-10s %s\n", link.Platform, valueOrDash(link.URL)))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	if v := m.editor.View(); v != "" {
		b.WriteString("\n")
		b.WriteString(v)
		b.WriteString("\n")
	}
	if v := m.links.View(); v != "" {
		b.WriteString("\n")
		b.WriteString(v)
		b.WriteString("\n")
	}

	return renderPage("SECTION: "+strings.ToUpper(m.name), strings.TrimRight(b.String(), "\n"), "esc: back │ r: reload │ c: copy text")
}

func (m *sectionModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	content := m.content
	name := m.name

	return func() tea.Msg {
		section, err := content.Load(ctx, name)
		return sectionLoadedMsg{ctx: ctx, section: section, err: err}
	}
}

// saveFields is the editor's save callback: the draft fields are merged by
// the content service over the last known payload.
func (m *sectionModel) saveFields(draft map[string]string) tea.Cmd {
	ctx := m.ctx
	content := m.content
	name := m.name
	edits := editsFromDraft(draft)

	return func() tea.Msg {
		section, err := content.Save(ctx, name, edits)
		return sectionSavedMsg{ctx: ctx, section: section, err: err}
	}
}

func (m *sectionModel) saveLinks(links []models.SocialLink) tea.Cmd {
	ctx := m.ctx
	content := m.content
	name := m.name
	edits := models.SectionData{socialLinksKey: socialLinksToData(links)}

	return func() tea.Msg {
		section, err := content.Save(ctx, name, edits)
		return linksSavedMsg{ctx: ctx, section: section, err: err}
	}
}

// sectionText is the plain text copied to the clipboard.
func sectionText(section models.Section) string {
	var lines []string
	for _, f := range fieldsForSection(section) {
		if f.Value != "" {
			lines = append(lines, f.Value)
		}
	}
	return strings.Join(lines, "\n")
}
