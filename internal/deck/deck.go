package deck

import "fmt"

// Count is one card type's state inside a live deck.
type Count struct {
	Name      string
	Remaining int
	Original  int
}

// Deck is a mutable multiset of remaining card counts derived from a Table.
// It is not safe for concurrent use; callers drive it from one goroutine.
type Deck struct {
	table     *Table
	remaining []int
	index     map[string]int
	total     int
	drawn     []string
	title     string
	reshuffle bool
}

// Option configures a new deck.
type Option func(*Deck)

// WithAutoReshuffle marks the deck as one the manager resets automatically
// when a draw finds it empty (the original tool's event-deck behavior).
func WithAutoReshuffle() Option {
	return func(d *Deck) { d.reshuffle = true }
}

// WithTitle sets the deck's display title, independent of its registry id.
func WithTitle(title string) Option {
	return func(d *Deck) { d.title = title }
}

// New builds a fresh deck from a table with every remaining count at its
// original value.
func New(t *Table, opts ...Option) *Deck {
	d := &Deck{
		table:     t,
		remaining: make([]int, t.Len()),
		index:     make(map[string]int, t.Len()),
		total:     t.Total(),
	}
	for i, e := range t.entries {
		d.remaining[i] = e.Count
		d.index[e.Name] = i
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Draw removes one card unit chosen uniformly among all remaining units and
// returns its name. Types with more remaining copies are proportionally more
// likely. Returns ErrEmptyDeck without mutating anything when no units remain.
func (d *Deck) Draw(rng RNG) (string, error) {
	if d.total == 0 {
		return "", ErrEmptyDeck
	}

	// Pick a unit index, then walk the fixed entry order accumulating
	// remaining counts until the cumulative range contains it. Exhausted
	// types contribute nothing, so they can never be selected.
	k := rng.Intn(d.total)
	for i, rem := range d.remaining {
		if k < rem {
			d.remaining[i]--
			d.total--
			name := d.table.entries[i].Name
			d.drawn = append(d.drawn, name)
			return name, nil
		}
		k -= rem
	}

	// Unreachable while total matches the sum of remaining counts.
	panic(fmt.Sprintf("deck: draw index beyond %d remaining units", d.total))
}

// Reset restores every remaining count to its original value and clears the
// drawn-card history. Resetting a fresh deck is a no-op.
func (d *Deck) Reset() {
	d.total = d.table.Total()
	for i, e := range d.table.entries {
		d.remaining[i] = e.Count
	}
	d.drawn = d.drawn[:0]
}

// Remaining returns the total number of undealt card units.
func (d *Deck) Remaining() int { return d.total }

// IsEmpty reports whether no card units remain.
func (d *Deck) IsEmpty() bool { return d.total == 0 }

// AutoReshuffle reports whether the deck asks to be reshuffled when empty.
func (d *Deck) AutoReshuffle() bool { return d.reshuffle }

// Title returns the deck's display title, or "" if none was set.
func (d *Deck) Title() string { return d.title }

// Table returns the card-type table this deck was built from.
func (d *Deck) Table() *Table { return d.table }

// Counts returns a snapshot of per-type state in definition order.
func (d *Deck) Counts() []Count {
	out := make([]Count, len(d.remaining))
	for i, e := range d.table.entries {
		out[i] = Count{Name: e.Name, Remaining: d.remaining[i], Original: e.Count}
	}
	return out
}

// Drawn returns the cards drawn since the last reset, oldest first.
func (d *Deck) Drawn() []string {
	return append([]string(nil), d.drawn...)
}

// DrawnCount returns how many copies of name have been drawn since the last
// reset. Unknown names report zero.
func (d *Deck) DrawnCount(name string) int {
	i, ok := d.index[name]
	if !ok {
		return 0
	}
	return d.table.entries[i].Count - d.remaining[i]
}
