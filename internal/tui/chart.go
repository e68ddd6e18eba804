package tui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tabletoptools/deckhand/internal/deck"
)

const chartHeight = 6

// renderCountsChart renders one bar per card type, scaled by remaining
// units, so the deck's composition is visible at a glance.
func (m *TableModel) renderCountsChart(d *deck.Deck, width int) string {
	counts := d.Counts()

	barWidth := 2
	gap := 1
	maxBars := width / (barWidth + gap)
	if maxBars < 1 {
		maxBars = 1
	}
	shown := counts
	if len(shown) > maxBars {
		shown = shown[:maxBars]
	}

	bc := barchart.New(width, chartHeight,
		barchart.WithBarGap(gap),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)

	for _, c := range shown {
		// Background matches foreground so the bar renders as a solid block.
		col := countColor(c)
		style := lipgloss.NewStyle().Foreground(col).Background(col)

		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: c.Name, Value: float64(c.Remaining), Style: style},
			},
		})
	}

	bc.Draw()
	return bc.View()
}
