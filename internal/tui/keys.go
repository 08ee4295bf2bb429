package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Pick     key.Binding
	Connect  key.Binding
	Ritual   key.Binding
	Dismiss  key.Binding
	Refresh  key.Binding
	Identity key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑↓", "section")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↑↓", "section")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "choose")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", "choose")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate presence")),
		Pick:     key.NewBinding(key.WithKeys("enter", "1", "2", "3", "4"), key.WithHelp("enter/1-4", "preview soul")),
		Connect:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
		Ritual:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "parallel universe")),
		Dismiss:  key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "dissolve")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "sense again")),
		Identity: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "identity")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) onboardingHelp() []key.Binding {
	return []key.Binding{k.Down, k.Left, k.Activate, k.Quit}
}

func (k keyMap) discoveryHelp(selected, connectable, ritual bool) []key.Binding {
	if !selected {
		return []key.Binding{k.Left, k.Pick, k.Refresh, k.Identity, k.Quit}
	}
	out := make([]key.Binding, 0, 4)
	if connectable {
		out = append(out, k.Connect)
	}
	if ritual {
		out = append(out, k.Ritual)
	}
	return append(out, k.Dismiss, k.Quit)
}

func (k keyMap) ritualHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Identity, k.Quit}
}
