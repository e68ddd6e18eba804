package deck

import "fmt"

// Entry is one card type in a deck definition: a name and how many copies
// the fresh deck holds.
type Entry struct {
	Name  string
	Count int
}

// Table is the immutable card-type table a deck is built from. Entries keep
// their definition order; names are unique; counts are positive.
type Table struct {
	entries []Entry
	total   int
}

// NewTable validates a definition and returns its table. The entry order of
// the input is preserved. All failures wrap ErrInvalidDefinition.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no card entries", ErrInvalidDefinition)
	}

	seen := make(map[string]struct{}, len(entries))
	t := &Table{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidDefinition, i)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate card name %q", ErrInvalidDefinition, e.Name)
		}
		if e.Count <= 0 {
			return nil, fmt.Errorf("%w: card %q has count %d, must be positive", ErrInvalidDefinition, e.Name, e.Count)
		}
		seen[e.Name] = struct{}{}
		t.entries[i] = e
		t.total += e.Count
	}
	return t, nil
}

// Len returns the number of distinct card types.
func (t *Table) Len() int { return len(t.entries) }

// Total returns the sum of all original counts.
func (t *Table) Total() int { return t.total }

// Entries returns a copy of the card-type entries in definition order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}
