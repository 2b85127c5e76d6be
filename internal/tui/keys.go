package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Split    key.Binding
	Size     key.Binding
	Distance key.Binding
	Add      key.Binding
	Remove   key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Forget   key.Binding
	Reset    key.Binding
	Theme    key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Split, k.Distance, k.Add, k.Remove, k.Undo, k.Redo, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Help, k.Quit},
		{k.Split, k.Size, k.Distance, k.Add, k.Remove},
		{k.Undo, k.Redo, k.Forget, k.Reset},
		{k.Theme, k.Copy},
	}
}

// editKeys is shown while a value is being typed
type editKeys struct {
	keyMap
}

func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Split: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit split"),
	),
	Size: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "resize"),
	),
	Distance: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "distance"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u", "ctrl+z"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("r", "ctrl+r", "ctrl+y"),
		key.WithHelp("r", "redo"),
	),
	Forget: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear history"),
	),
	Reset: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset plan"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "light/dark"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy plan"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}
