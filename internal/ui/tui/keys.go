package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keyboard bindings of the reminder screen.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Up        key.Binding
	Down      key.Binding
	Complete  key.Binding
	Delete    key.Binding
	Sort      key.Binding
	Help      key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Deny      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add task"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c/space", "mark completed"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d/del", "delete"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by due date"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc/C-c", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Complete, k.Delete, k.Sort, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Form
		{k.NextField, k.PrevField, k.Submit},
		// List
		{k.Up, k.Down, k.Complete, k.Delete, k.Sort},
		{k.Help, k.Quit},
	}
}
