package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Navigation
	NextDeck key.Binding
	PrevDeck key.Binding
	Up       key.Binding
	Down     key.Binding

	// Actions
	Draw   key.Binding
	Reset  key.Binding
	Status key.Binding
}

// DefaultKeyMap returns the default key bindings. They mirror the classic
// command loop: d draws, r resets, s shows status, h/? opens help, q quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "close"),
		),

		NextDeck: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next deck"),
		),
		PrevDeck: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "prev deck"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),

		Draw: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d/enter", "draw a card"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset deck"),
		),
		Status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "all decks status"),
		),
	}
}
