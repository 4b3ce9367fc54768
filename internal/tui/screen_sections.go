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

// sectionsModel is the overview of every content section. Entering it runs
// the role check and all section fetches; defaults are shown until they
// settle.
type sectionsModel struct {
	ctx     context.Context
	session service.ClientSessionService
	content service.ClientContentService

	names   []string
	idx     int
	loading bool
	spinner spinner.Model

	isAdmin bool
	failed  map[string]error
	status  string
	errMsg  string
}

func newSectionsModel(session service.ClientSessionService, content service.ClientContentService) *sectionsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &sectionsModel{
		session: session,
		content: content,
		names:   append([]string(nil), models.KnownSections...),
		spinner: s,
		failed:  make(map[string]error),
	}
}

func (m *sectionsModel) Init() tea.Cmd {
	return nil
}

func (m *sectionsModel) enter(ctx context.Context, payload any) tea.Cmd {
	m.ctx = ctx
	m.errMsg = ""
	m.status = ""
	if n, ok := payload.(notice); ok {
		m.status = string(n)
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoadAll())
}

func (m *sectionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contentLoadedMsg:
		if msg.ctx != m.ctx {
			return m, nil
		}
		m.loading = false
		m.isAdmin = msg.snapshot.IsAdmin
		m.failed = msg.snapshot.Failed
		if msg.err != nil && !isCancelled(msg.err) {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case loggedOutMsg:
		if msg.ctx != m.ctx {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.isAdmin = false
		m.status = "Signed out"
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.names)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, navigate(pageSection, sectionRef{name: m.names[m.idx], isAdmin: m.isAdmin})
	case key.Matches(keyMsg, keys.projects):
		return m, navigate(pageProjects, projectsRef{isAdmin: m.isAdmin})
	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadAll())
	case key.Matches(keyMsg, keys.login):
		if !m.isAdmin {
			return m, navigate(pageLogin, nil)
		}
	case key.Matches(keyMsg, keys.logout):
		if m.session.Current().Email != "" {
			return m, m.cmdLogout()
		}
	}
	return m, nil
}

func (m *sectionsModel) View() string {
	var b strings.Builder

	role := "visitor (read only)"
	if m.isAdmin {
		role = "administrator"
	}
	if email := m.session.Current().Email; email != "" {
		role += " │ " + email
	}
	b.WriteString(role)
	if m.loading {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")

	for i, name := range m.names {
		line := fmt.Sprintf("%s%-17s %s", cursor(i == m.idx), name, fitText(sectionTitle(m.content.Current(name)), 36))
		if err, failed := m.failed[name]; failed && err != nil {
			line += helpStyle.Render("  (defaults: " + humanizeError(err) + ")")
		}
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
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

	hotKeys := "enter: open │ p: projects │ r: reload │ v: build info │ q: quit"
	if m.isAdmin {
		hotKeys += " │ l: sign out"
	} else {
		hotKeys += " │ a: admin login"
	}
	return renderPage("PORTFOLIO SECTIONS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *sectionsModel) cmdLoadAll() tea.Cmd {
	ctx := m.ctx
	content := m.content
	names := append([]string(nil), m.names...)

	return func() tea.Msg {
		snapshot, err := content.LoadAll(ctx, names...)
		return contentLoadedMsg{ctx: ctx, snapshot: snapshot, err: err}
	}
}

func (m *sectionsModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return loggedOutMsg{ctx: ctx, err: session.Logout(ctx)}
	}
}
