package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	save     key.Binding
	reload   key.Binding
	login    key.Binding
	logout   key.Binding
	projects key.Binding
	newItem  key.Binding
	edit     key.Binding
	links    key.Binding
	delete   key.Binding
	copy     key.Binding
	yes      key.Binding
	no       key.Binding
	toggle   key.Binding
	addLink  key.Binding
	dropLink key.Binding
	platform key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	reload:   key.NewBinding(key.WithKeys("r")),
	login:    key.NewBinding(key.WithKeys("a")),
	logout:   key.NewBinding(key.WithKeys("l")),
	projects: key.NewBinding(key.WithKeys("p")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	links:    key.NewBinding(key.WithKeys("s")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	addLink:  key.NewBinding(key.WithKeys("ctrl+n")),
	dropLink: key.NewBinding(key.WithKeys("ctrl+d")),
	platform: key.NewBinding(key.WithKeys("ctrl+p")),
}

// listUp and listDown skip the vim keys; they are used where a text input
// is focused at the same time.
var (
	listUp   = key.NewBinding(key.WithKeys("up"))
	listDown = key.NewBinding(key.WithKeys("down"))
)
