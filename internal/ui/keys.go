package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-wide key bindings. Keys inside the
// add-book form are handled by the form itself.
type KeyMap struct {
	Escape      key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	ThemeToggle key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeToggle: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "next theme"),
		),
	}
}
