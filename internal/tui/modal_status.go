package tui

import (
	"fmt"
	"strings"

	"github.com/tabletoptools/deckhand/internal/deck"
)

// NewStatusModal builds the all-decks status overlay, mirroring the classic
// "s" command: per-deck totals and per-card remaining counts.
func NewStatusModal(m *deck.Manager, width, height int) Modal {
	return newContentModal("status", "Status of all loaded decks", renderManagerStatus(m), width, height)
}

func renderManagerStatus(m *deck.Manager) string {
	ids := m.IDs()
	if len(ids) == 0 {
		return "No decks loaded."
	}

	var b strings.Builder
	for i, id := range ids {
		d, err := m.Get(id)
		if err != nil {
			continue
		}

		if i > 0 {
			b.WriteString("\n")
		}

		total := d.Table().Total()
		fmt.Fprintf(&b, "%s: %d/%d cards remaining", id, d.Remaining(), total)
		if d.AutoReshuffle() {
			b.WriteString(" (auto-reshuffle)")
		}
		if d.IsEmpty() {
			b.WriteString(" [empty]")
		}
		b.WriteString("\n")

		for _, c := range d.Counts() {
			fmt.Fprintf(&b, "  %-20s %3d / %d\n", c.Name, c.Remaining, c.Original)
		}
		if drawn := d.Drawn(); len(drawn) > 0 {
			fmt.Fprintf(&b, "  drawn: %s\n", strings.Join(drawn, ", "))
		}
	}
	return b.String()
}
