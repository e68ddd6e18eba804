package deck

import "fmt"

// Manager owns a set of independent decks addressable by id. Registration
// order is preserved for listings. Like Deck, it is single-caller only.
type Manager struct {
	ids   []string
	decks map[string]*Deck
}

// DrawResult is the outcome of a manager-level draw, including whether an
// auto-reshuffle deck was reset to satisfy it.
type DrawResult struct {
	Card       string
	Reshuffled bool
}

func NewManager() *Manager {
	return &Manager{decks: make(map[string]*Deck)}
}

// Create builds a deck from table and registers it under id.
func (m *Manager) Create(id string, t *Table, opts ...Option) (*Deck, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidDefinition)
	}
	if _, exists := m.decks[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateDeck, id)
	}
	d := New(t, opts...)
	m.decks[id] = d
	m.ids = append(m.ids, id)
	return d, nil
}

// Get returns the deck registered under id.
func (m *Manager) Get(id string) (*Deck, error) {
	d, ok := m.decks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDeck, id)
	}
	return d, nil
}

// Remove unregisters the deck under id.
func (m *Manager) Remove(id string) error {
	if _, ok := m.decks[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDeck, id)
	}
	delete(m.decks, id)
	for i, existing := range m.ids {
		if existing == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
	return nil
}

// IDs returns all registered deck ids in creation order.
func (m *Manager) IDs() []string {
	return append([]string(nil), m.ids...)
}

// Len returns the number of registered decks.
func (m *Manager) Len() int { return len(m.ids) }

// Draw draws one card from the deck under id. An empty deck created with
// WithAutoReshuffle is reset first and the result says so; any other empty
// deck surfaces ErrEmptyDeck untouched.
func (m *Manager) Draw(id string, rng RNG) (DrawResult, error) {
	d, err := m.Get(id)
	if err != nil {
		return DrawResult{}, err
	}

	var res DrawResult
	if d.IsEmpty() && d.AutoReshuffle() {
		d.Reset()
		res.Reshuffled = true
	}

	card, err := d.Draw(rng)
	if err != nil {
		return DrawResult{}, err
	}
	res.Card = card
	return res, nil
}
