package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the grid browser keybindings.
type KeyMap struct {
	Back     key.Binding
	Forward  key.Binding
	PageBack key.Binding
	PageFwd  key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Jump     key.Binding
	FullGrid key.Binding
	Hide     key.Binding
	Reset    key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("up", "left", "k"),
			key.WithHelp("↑/←", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("down", "right", "j"),
			key.WithHelp("↓/→", "forward"),
		),
		PageBack: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page back"),
		),
		PageFwd: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "page forward"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Jump: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "jump"),
		),
		FullGrid: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full grid"),
		),
		Hide: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "double"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "halve"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// hints lists the bindings shown in the status bar, in display order.
func (k KeyMap) hints() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.PageFwd, k.Top, k.Bottom, k.Jump, k.FullGrid, k.Hide, k.Reset, k.Grow, k.Help, k.Quit}
}

// all lists every binding for the help page.
func (k KeyMap) all() []key.Binding {
	return []key.Binding{
		k.Back, k.Forward, k.PageBack, k.PageFwd, k.Top, k.Bottom, k.Jump,
		k.FullGrid, k.Hide, k.Reset, k.Grow, k.Shrink, k.Help, k.Quit,
	}
}

func isQuit(k KeyMap, msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}
