package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const editorConfirmDuration = 1200 * time.Millisecond

// EditorField describes one editable value of a section.
type EditorField struct {
	Key       string
	Label     string
	Value     string
	Multiline bool
}

// EditorSaveFunc persists the full draft. The returned command must produce
// an editorSaveDoneMsg for the editor, directly or through its parent.
type EditorSaveFunc func(draft map[string]string) tea.Cmd

type editorSaveDoneMsg struct {
	err error
}

type editorCollapseMsg struct {
	seq int
}

// sectionEditorModel is the inline admin editor of a section. It keeps a
// draft seeded from the last known values: cancel discards the draft, save
// hands all of it to onSave and collapses after a short confirmation.
type sectionEditorModel struct {
	fields []EditorField
	inputs []editorInput
	focus  int

	isAdmin bool
	open    bool
	saving  bool
	saved   bool
	errMsg  string

	onSave EditorSaveFunc

	// seq guards against a stale collapse tick after a reopen.
	seq int
}

func newSectionEditor(fields []EditorField, isAdmin bool, onSave EditorSaveFunc) sectionEditorModel {
	m := sectionEditorModel{isAdmin: isAdmin, onSave: onSave}
	m.fields = cloneFields(fields)
	m.seed()
	return m
}

// Open reports whether the panel is expanded and owns key input.
func (m sectionEditorModel) Open() bool {
	return m.open
}

func (m *sectionEditorModel) SetAdmin(isAdmin bool) {
	m.isAdmin = isAdmin
	if !isAdmin {
		m.open = false
	}
}

// SetFields re-seeds the draft from new last-known values.
func (m *sectionEditorModel) SetFields(fields []EditorField) {
	if sameFields(m.fields, fields) {
		return
	}
	m.fields = cloneFields(fields)
	m.seed()
	if len(m.inputs) == 0 {
		// nothing left to edit
		m.open = false
		m.saving = false
		m.saved = false
		m.focus = 0
		m.seq++
		return
	}
	if m.open {
		m.focus = min(m.focus, len(m.inputs)-1)
		_ = focusInputs(m.inputs, -1, m.focus)
	}
}

// Draft returns the current value of every field.
func (m sectionEditorModel) Draft() map[string]string {
	draft := make(map[string]string, len(m.inputs))
	for _, in := range m.inputs {
		draft[in.key] = in.value()
	}
	return draft
}

func (m *sectionEditorModel) seed() {
	m.inputs = make([]editorInput, len(m.fields))
	for i, f := range m.fields {
		m.inputs[i] = newEditorInput(f.Key, f.Label, f.Value, f.Multiline)
	}
}

func (m sectionEditorModel) Update(msg tea.Msg) (sectionEditorModel, tea.Cmd) {
	if !m.isAdmin {
		return m, nil
	}

	switch msg := msg.(type) {
	case editorSaveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.saved = true
		m.seq++
		seq := m.seq
		return m, tea.Tick(editorConfirmDuration, func(time.Time) tea.Msg {
			return editorCollapseMsg{seq: seq}
		})
	case editorCollapseMsg:
		if msg.seq == m.seq && m.saved {
			m.saved = false
			m.collapse()
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.open {
			return m, m.updateFocused(msg)
		}
		return m, nil
	}

	if !m.open {
		if key.Matches(keyMsg, keys.edit) {
			return m, m.expand()
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.saving {
			return m, nil
		}
		m.seq++
		m.saved = false
		m.collapse()
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.saving || m.onSave == nil {
			return m, nil
		}
		m.saving = true
		m.errMsg = ""
		return m, m.onSave(m.Draft())
	case len(m.inputs) == 0:
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		next := (m.focus + 1) % len(m.inputs)
		cmd := focusInputs(m.inputs, m.focus, next)
		m.focus = next
		return m, cmd
	case key.Matches(keyMsg, keys.backtab):
		prev := (m.focus - 1 + len(m.inputs)) % len(m.inputs)
		cmd := focusInputs(m.inputs, m.focus, prev)
		m.focus = prev
		return m, cmd
	}

	if m.saving {
		return m, nil
	}
	return m, m.updateFocused(msg)
}

func (m *sectionEditorModel) expand() tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.open = true
	m.saved = false
	m.errMsg = ""
	m.seed()
	m.focus = 0
	return focusInputs(m.inputs, -1, 0)
}

// collapse drops the draft and reverts to the last known values.
func (m *sectionEditorModel) collapse() {
	m.open = false
	m.errMsg = ""
	m.seed()
}

func (m *sectionEditorModel) updateFocused(msg tea.Msg) tea.Cmd {
	if m.focus < 0 || m.focus >= len(m.inputs) {
		return nil
	}
	return m.inputs[m.focus].update(msg)
}

func (m sectionEditorModel) View() string {
	if !m.isAdmin {
		return ""
	}
	if !m.open {
		return helpStyle.Render("e: edit section")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit section"))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		b.WriteString(cursor(i == m.focus))
		b.WriteString(in.label)
		b.WriteString("\n")
		b.WriteString(in.view())
		b.WriteString("\n\n")
	}

	switch {
	case m.saved:
		b.WriteString(successStyle.Render("Saved ✓"))
		b.WriteString("\n")
	case m.saving:
		b.WriteString("Saving...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/shift+tab: field │ ctrl+s: save │ esc: cancel"))
	return panelStyle.Render(b.String())
}

func cloneFields(fields []EditorField) []EditorField {
	return append([]EditorField(nil), fields...)
}

func sameFields(a, b []EditorField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
