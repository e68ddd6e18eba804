package tui

// NewHelpModal builds the help overlay describing every key binding.
func NewHelpModal(width, height int) Modal {
	helpContent := `Deckhand Help

ACTIONS:
  d or Enter     - Draw a random card from the active deck
  r              - Reset the active deck to its original state
  s              - Show the state of all loaded decks

NAVIGATION:
  Tab / →        - Switch to the next deck
  Shift+Tab / ←  - Switch to the previous deck
  up/down or k/j - Scroll the draw history

GENERAL:
  ? or h         - Toggle this help
  Esc            - Close an open overlay
  q / Ctrl+C     - Quit

DECKS:
  Every deck is loaded from its own definition file (JSON or YAML) with a
  "cards" list of {name, count} entries. Drawing removes one card unit at
  random, weighted by how many copies of each card remain. A deck defined
  with "reshuffle: true" resets itself automatically when a draw finds it
  empty; any other deck reports empty until you reset it.
`

	return newContentModal("help", "Help & Key Bindings", helpContent, width, height)
}
