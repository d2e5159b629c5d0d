package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Edit   key.Binding
	Delete key.Binding
	Add    key.Binding
	Submit key.Binding
	Cancel key.Binding
	Switch key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "new task"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload config"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// bindings adapts a flat list of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding { return b }

func (b bindings) FullHelp() [][]key.Binding {
	cols := make([][]key.Binding, 0, (len(b)+2)/3)
	for i := 0; i < len(b); i += 3 {
		cols = append(cols, b[i:min(i+3, len(b))])
	}
	return cols
}

func (k keyMap) inputHelp() bindings {
	submit := k.Submit
	submit.SetHelp("enter", "add")
	return bindings{submit, k.Switch, k.Cancel}
}

func (k keyMap) editHelp() bindings {
	return bindings{k.Submit, k.Cancel}
}

func (k keyMap) listHelp(full bool) bindings {
	if !full {
		return bindings{k.Toggle, k.Edit, k.Delete, k.Add, k.Help, k.Quit}
	}
	return bindings{k.Up, k.Down, k.Toggle, k.Edit, k.Delete, k.Add, k.Switch, k.Reload, k.Help, k.Quit}
}
