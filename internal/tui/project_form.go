package tui

import (
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// projectFormModel is the add/edit form of a project. The featured flag is
// the last focus stop and toggles with space.
type projectFormModel struct {
	id       string
	inputs   []editorInput
	featured bool
	focus    int

	submitting bool
	errMsg     string
}

// projectFormSubmitMsg is emitted by the form on ctrl+s with a valid draft.
type projectFormSubmitMsg struct {
	id      string
	project models.Project
}

// projectFormCancelMsg is emitted on esc.
type projectFormCancelMsg struct{}

func newProjectForm(p models.Project) *projectFormModel {
	f := &projectFormModel{
		id:       p.ID,
		featured: p.Featured,
		inputs: []editorInput{
			newEditorInput("title", "Title", p.Title, false),
			newEditorInput("description", "Description", p.Description, true),
			newEditorInput("image", "Image URL", p.Image, false),
			newEditorInput("technologies", "Technologies (comma separated)", strings.Join(p.Technologies, ", "), false),
			newEditorInput("liveDemo", "Live demo URL", p.LiveDemo, false),
			newEditorInput("github", "GitHub URL", p.GitHub, false),
		},
	}
	_ = focusInputs(f.inputs, -1, 0)
	return f
}

func (f *projectFormModel) editing() bool {
	return f.id != ""
}

// stops is the number of focus positions: every input plus the flag.
func (f *projectFormModel) stops() int {
	return len(f.inputs) + 1
}

func (f *projectFormModel) onFlag() bool {
	return f.focus == len(f.inputs)
}

func (f *projectFormModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if f.onFlag() {
			return nil
		}
		return f.inputs[f.focus].update(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if f.submitting {
			return nil
		}
		return func() tea.Msg { return projectFormCancelMsg{} }
	case key.Matches(keyMsg, keys.save):
		if f.submitting {
			return nil
		}
		p := f.project()
		if p.Title == "" || p.Description == "" {
			f.errMsg = "Title and description are required"
			return nil
		}
		f.errMsg = ""
		f.submitting = true
		id := f.id
		return func() tea.Msg { return projectFormSubmitMsg{id: id, project: p} }
	case key.Matches(keyMsg, keys.tab):
		return f.move(1)
	case key.Matches(keyMsg, keys.backtab):
		return f.move(-1)
	}

	if f.submitting {
		return nil
	}
	if f.onFlag() {
		if key.Matches(keyMsg, keys.toggle) {
			f.featured = !f.featured
		}
		return nil
	}
	return f.inputs[f.focus].update(msg)
}

func (f *projectFormModel) move(delta int) tea.Cmd {
	next := (f.focus + delta + f.stops()) % f.stops()
	cmd := focusInputs(f.inputs, f.focus, next)
	f.focus = next
	return cmd
}

// project collects the draft; ID stays empty for a new project.
func (f *projectFormModel) project() models.Project {
	values := make(map[string]string, len(f.inputs))
	for _, in := range f.inputs {
		values[in.key] = strings.TrimSpace(in.value())
	}

	return models.Project{
		ID:           f.id,
		Title:        values["title"],
		Description:  values["description"],
		Image:        values["image"],
		Technologies: splitTechnologies(values["technologies"]),
		LiveDemo:     values["liveDemo"],
		GitHub:       values["github"],
		Featured:     f.featured,
	}
}

func (f *projectFormModel) View() string {
	var b strings.Builder
	if f.editing() {
		b.WriteString(titleStyle.Render("Edit project"))
	} else {
		b.WriteString(titleStyle.Render("New project"))
	}
	b.WriteString("\n\n")

	for i, in := range f.inputs {
		b.WriteString(cursor(i == f.focus))
		b.WriteString(in.label)
		b.WriteString("\n")
		b.WriteString(in.view())
		b.WriteString("\n")
	}

	flag := "[ ]"
	if f.featured {
		flag = "[x]"
	}
	b.WriteString(cursor(f.onFlag()))
	b.WriteString(flag)
	b.WriteString(" Featured\n")

	if f.submitting {
		b.WriteString("\nSaving...\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab: field │ space: toggle featured │ ctrl+s: save │ esc: cancel"))
	return panelStyle.Render(b.String())
}

func splitTechnologies(s string) []string {
	techs := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}
