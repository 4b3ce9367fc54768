// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel is the admin sign-in screen. It renders email and password
// inputs and dispatches an async login through the session service. On
// success it navigates back to the sections overview.
type loginModel struct {
	ctx     context.Context
	session service.ClientSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel(session service.ClientSessionService) *loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &loginModel{
		session: session,
		inputs:  []textinput.Model{emailInput, passwordInput},
	}
}

// enter prefills the email of the last session and clears the password.
func (m *loginModel) enter(ctx context.Context, _ any) tea.Cmd {
	m.ctx = ctx
	m.submitting = false
	m.errMsg = ""

	m.inputs[0].SetValue(m.session.Current().Email)
	m.inputs[1].SetValue("")

	m.inputs[m.focus].Blur()
	m.focus = 0
	if m.inputs[0].Value() != "" {
		m.focus = 1
	}
	return tea.Batch(m.inputs[m.focus].Focus(), textinput.Blink)
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - loginDoneMsg: clears submitting state; on error, populates errMsg.
//   - esc         : cancels and navigates back to the sections.
//   - tab         : moves focus to the next input.
//   - shift+tab   : moves focus to the previous input.
//   - enter       : validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginDoneMsg); ok {
		if result.ctx != m.ctx {
			return m, nil
		}
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		return m, navigate(pageSections, notice("Signed in as "+result.session.Email))
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageSections, nil)
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if email == "" || pass == "" {
				m.errMsg = "Please provide email and password"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ADMIN LOGIN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: sign in")
}

func (m *loginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		s, err := session.Login(ctx, models.Credentials{Email: email, Password: pass})
		return loginDoneMsg{ctx: ctx, session: s, err: err}
	}
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
