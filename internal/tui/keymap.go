package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the scan monitor.
type KeyMap struct {
	Quit    key.Binding
	Restart key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart scan"),
		),
	}
}
