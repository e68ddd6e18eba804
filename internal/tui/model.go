package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/tabletoptools/deckhand/internal/deck"
)

// eventKind classifies the last table event for styling.
type eventKind int

const (
	eventNone eventKind = iota
	eventDraw
	eventReshuffle
	eventReset
	eventEmpty
)

// TableModel is the play-table screen: every loaded deck, the active deck's
// counts and draw history, and the keys that drive them.
type TableModel struct {
	manager *deck.Manager
	rng     deck.RNG
	ids     []string
	active  int

	keys   KeyMap
	width  int
	height int

	lastEvent     string
	lastEventKind eventKind

	historyVP viewport.Model
	modal     Modal
}

// NewTableModel builds the table screen over an already-populated manager.
func NewTableModel(m *deck.Manager, rng deck.RNG) *TableModel {
	return &TableModel{
		manager:   m,
		rng:       rng,
		ids:       m.IDs(),
		keys:      DefaultKeyMap(),
		historyVP: viewport.New(0, 0),
	}
}

// activeID returns the id of the focused deck, or "" with no decks.
func (m *TableModel) activeID() string {
	if m.active < 0 || m.active >= len(m.ids) {
		return ""
	}
	return m.ids[m.active]
}

// activeDeck returns the focused deck, or nil with no decks.
func (m *TableModel) activeDeck() *deck.Deck {
	id := m.activeID()
	if id == "" {
		return nil
	}
	d, err := m.manager.Get(id)
	if err != nil {
		return nil
	}
	return d
}

func (m *TableModel) nextDeck() {
	if len(m.ids) > 1 {
		m.active = (m.active + 1) % len(m.ids)
		m.clearEvent()
	}
}

func (m *TableModel) prevDeck() {
	if len(m.ids) > 1 {
		m.active = (m.active - 1 + len(m.ids)) % len(m.ids)
		m.clearEvent()
	}
}

func (m *TableModel) clearEvent() {
	m.lastEvent = ""
	m.lastEventKind = eventNone
}

// drawCard draws from the focused deck and records the outcome message.
func (m *TableModel) drawCard() {
	id := m.activeID()
	if id == "" {
		return
	}

	res, err := m.manager.Draw(id, m.rng)
	switch {
	case err != nil:
		// Only ErrEmptyDeck can happen here: the id came from the manager.
		m.lastEvent = "The deck is empty! Press r to reset."
		m.lastEventKind = eventEmpty
	case res.Reshuffled:
		m.lastEvent = fmt.Sprintf("Deck reshuffled. Drew: %s", res.Card)
		m.lastEventKind = eventReshuffle
	default:
		m.lastEvent = fmt.Sprintf("Drew: %s", res.Card)
		m.lastEventKind = eventDraw
	}
	m.refreshHistory()
}

// resetDeck restores the focused deck to its original composition.
func (m *TableModel) resetDeck() {
	d := m.activeDeck()
	if d == nil {
		return
	}
	d.Reset()
	m.lastEvent = "Deck reset to original state"
	m.lastEventKind = eventReset
	m.refreshHistory()
}

// refreshHistory rebuilds the history pane content and follows the tail.
func (m *TableModel) refreshHistory() {
	m.historyVP.SetContent(m.renderHistoryLines())
	m.historyVP.GotoBottom()
}
