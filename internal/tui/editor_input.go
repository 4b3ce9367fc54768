package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 48

// editorInput is one labelled form control: a textinput for single-line
// values, a textarea for multiline ones.
type editorInput struct {
	key       string
	label     string
	multiline bool

	line textinput.Model
	area textarea.Model
}

func newEditorInput(key, label, value string, multiline bool) editorInput {
	in := editorInput{key: key, label: label, multiline: multiline}
	if multiline {
		in.area = textarea.New()
		in.area.ShowLineNumbers = false
		in.area.SetWidth(inputWidth)
		in.area.SetHeight(4)
		in.area.CharLimit = 0
		in.area.SetValue(value)
		in.area.Blur()
		return in
	}

	in.line = textinput.New()
	in.line.Width = inputWidth
	in.line.CharLimit = 0
	in.line.SetValue(value)
	in.line.CursorEnd()
	return in
}

func (in editorInput) value() string {
	if in.multiline {
		return in.area.Value()
	}
	return in.line.Value()
}

func (in *editorInput) focus() tea.Cmd {
	if in.multiline {
		return in.area.Focus()
	}
	return in.line.Focus()
}

func (in *editorInput) blur() {
	if in.multiline {
		in.area.Blur()
		return
	}
	in.line.Blur()
}

func (in *editorInput) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if in.multiline {
		in.area, cmd = in.area.Update(msg)
	} else {
		in.line, cmd = in.line.Update(msg)
	}
	return cmd
}

func (in editorInput) view() string {
	if in.multiline {
		return in.area.View()
	}
	return in.line.View()
}

// focusInputs moves focus from inputs[from] to inputs[to].
func focusInputs(inputs []editorInput, from, to int) tea.Cmd {
	if from >= 0 && from < len(inputs) {
		inputs[from].blur()
	}
	if to >= 0 && to < len(inputs) {
		return inputs[to].focus()
	}
	return nil
}
