package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// projectsModel lists projects and, for an administrator, hosts the
// add/edit form and the delete confirmation.
type projectsModel struct {
	ctx      context.Context
	projects service.ClientProjectService

	items   []models.Project
	idx     int
	loading bool
	spinner spinner.Model
	isAdmin bool

	form    *projectFormModel
	confirm *confirmModel
	overlay *errorOverlayModel

	status string
	errMsg string
}

func newProjectsModel(projects service.ClientProjectService) *projectsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &projectsModel{projects: projects, spinner: s}
}

func (m *projectsModel) Init() tea.Cmd {
	return nil
}

func (m *projectsModel) enter(ctx context.Context, payload any) tea.Cmd {
	if ref, ok := payload.(projectsRef); ok {
		m.isAdmin = ref.isAdmin
	}
	m.ctx = ctx
	m.form = nil
	m.confirm = nil
	m.overlay = nil
	m.status = ""
	m.errMsg = ""
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdList())
}

func (m *projectsModel) current() (models.Project, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Project{}, false
	}
	return m.items[m.idx], true
}

func (m *projectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		if msg.ctx != m.ctx {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			if !isCancelled(msg.err) {
				m.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.projects
		m.idx = min(m.idx, len(m.items)-1)
		m.idx = max(m.idx, 0)
		return m, nil
	case projectSavedMsg:
		if msg.ctx != m.ctx {
			return m, nil
		}
		if msg.err != nil {
			if m.form != nil {
				m.form.submitting = false
				m.form.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		m.form = nil
		if msg.created {
			m.status = "Project created"
		} else {
			m.status = "Project updated"
		}
		m.loading = true
		return m, m.cmdList()
	case projectDeletedMsg:
		if msg.ctx != m.ctx {
			return m, nil
		}
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "Delete failed: " + humanizeError(msg.err)}
			return m, nil
		}
		m.status = "Project deleted"
		m.loading = true
		return m, m.cmdList()
	case projectFormSubmitMsg:
		if msg.id == "" {
			return m, m.cmdCreate(msg.project)
		}
		return m, m.cmdUpdate(msg.id, msg.project)
	case projectFormCancelMsg:
		m.form = nil
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.form != nil {
		return m, m.form.Update(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirm = nil
			if p, ok := m.current(); ok {
				return m, m.cmdDelete(p.ID)
			}
		case key.Matches(keyMsg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		return m, navigate(pageSections, nil)
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.reload):
		if !m.loading {
			m.loading = true
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdList())
		}
	case key.Matches(keyMsg, keys.copy):
		m.copyLink()
	case key.Matches(keyMsg, keys.newItem):
		if m.isAdmin {
			m.status = ""
			m.form = newProjectForm(models.Project{})
		}
	case key.Matches(keyMsg, keys.edit):
		if p, ok := m.current(); ok && m.isAdmin {
			m.status = ""
			m.form = newProjectForm(p)
		}
	case key.Matches(keyMsg, keys.delete):
		if p, ok := m.current(); ok && m.isAdmin {
			m.confirm = &confirmModel{message: p.Title}
		}
	}
	return m, nil
}

// copyLink puts the live demo url, or the repository url, on the clipboard.
func (m *projectsModel) copyLink() {
	p, ok := m.current()
	if !ok {
		return
	}
	link := p.LiveDemo
	if link == "" {
		link = p.GitHub
	}
	if link == "" {
		m.status = "Nothing to copy"
		return
	}
	if err := copyToClipboard(link); err != nil {
		m.errMsg = "Copy failed: " + err.Error()
		return
	}
	m.status = "Link copied"
}

func (m *projectsModel) View() string {
	if m.overlay != nil {
		return renderPage("PROJECTS", m.overlay.View(), "")
	}
	if m.confirm != nil {
		return renderPage("PROJECTS", m.confirm.View(), "")
	}
	if m.form != nil {
		return renderPage("PROJECTS", m.form.View(), "")
	}

	var b strings.Builder
	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...\n\n")
	}

	if len(m.items) == 0 && !m.loading {
		b.WriteString("No projects yet\n")
	}
	for i, p := range m.items {
		star := " "
		if p.Featured {
			star = "★"
		}
		line := fmt.Sprintf("%s%s %s", cursor(i == m.idx), star, fitText(p.Title, 48))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if p, ok := m.current(); ok {
		b.WriteString("\n")
		b.WriteString(fitText(p.Description, 120))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tech: " + valueOrDash(strings.Join(p.Technologies, ", "))))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("demo: " + valueOrDash(p.LiveDemo) + " │ code: " + valueOrDash(p.GitHub)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "esc: back │ r: reload │ c: copy link"
	if m.isAdmin {
		hotKeys += " │ n: new │ e: edit │ d: delete"
	}
	return renderPage("PROJECTS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *projectsModel) cmdList() tea.Cmd {
	ctx := m.ctx
	projects := m.projects

	return func() tea.Msg {
		items, err := projects.List(ctx)
		return projectsLoadedMsg{ctx: ctx, projects: items, err: err}
	}
}

func (m *projectsModel) cmdCreate(p models.Project) tea.Cmd {
	ctx := m.ctx
	projects := m.projects

	return func() tea.Msg {
		created, err := projects.Create(ctx, p)
		return projectSavedMsg{ctx: ctx, project: created, created: true, err: err}
	}
}

func (m *projectsModel) cmdUpdate(id string, p models.Project) tea.Cmd {
	ctx := m.ctx
	projects := m.projects

	return func() tea.Msg {
		updated, err := projects.Update(ctx, id, models.FullUpdate(p))
		return projectSavedMsg{ctx: ctx, project: updated, err: err}
	}
}

func (m *projectsModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	projects := m.projects

	return func() tea.Msg {
		return projectDeletedMsg{ctx: ctx, id: id, err: projects.Delete(ctx, id)}
	}
}
