package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabletoptools/deckhand/internal/deck"
)

const (
	statusLineHeight = 1
	headerHeight     = 1
	eventLineHeight  = 1
	minWidth         = 50
	minHeight        = 16
)

// View renders the table screen.
func (m *TableModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing table..."
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small. Resize to at least %dx%d.", minWidth, minHeight)
	}

	if m.modal != nil {
		return m.modal.View()
	}

	header := m.renderHeader()
	body := m.renderBody()
	event := m.renderEventLine()
	status := m.renderStatusLine()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, event, status)
}

// renderHeader renders the branding and the deck tab strip.
func (m *TableModel) renderHeader() string {
	brand := renderBranding()

	var tabs []string
	for i, id := range m.ids {
		style := deckTabStyle
		if i == m.active {
			style = activeDeckTabStyle
		}
		tabs = append(tabs, style.Render(id))
	}

	row := brand + "  " + strings.Join(tabs, " ")
	return lipgloss.NewStyle().Width(m.width).Render(row)
}

// renderBranding renders "Deckhand" with a green to blue gradient.
func renderBranding() string {
	colors := []string{
		"#49E209", "#3FDE2B", "#35DB4D", "#2BD76F",
		"#21D391", "#17D0B3", "#0DCCD5", "#03C9F7",
	}
	chars := []string{"D", "e", "c", "k", "h", "a", "n", "d"}

	var result string
	for i, ch := range chars {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(ch)
	}
	return result
}

// bodyHeight returns the height available for the main panels.
func (m *TableModel) bodyHeight() int {
	return m.height - headerHeight - eventLineHeight - statusLineHeight
}

// paneWidths splits the body into the counts pane and the history pane.
func (m *TableModel) paneWidths() (countsW, historyW int) {
	historyW = m.width * 2 / 5
	if historyW < 24 {
		historyW = 24
	}
	countsW = m.width - historyW
	return countsW, historyW
}

// resizePanes propagates the current dimensions into the history viewport.
func (m *TableModel) resizePanes() {
	_, historyW := m.paneWidths()
	m.historyVP.Width = historyW - 4 // section border + padding
	m.historyVP.Height = m.bodyHeight() - 3
	m.refreshHistory()
}

func (m *TableModel) renderBody() string {
	countsW, historyW := m.paneWidths()
	h := m.bodyHeight()

	counts := m.renderCountsPane(countsW-2, h-2)
	history := m.renderHistoryPane(historyW-2, h-2)

	return lipgloss.JoinHorizontal(lipgloss.Top, counts, history)
}

// renderCountsPane renders the active deck's remaining counts: the unit
// chart plus one textual bar row per card type.
func (m *TableModel) renderCountsPane(width, height int) string {
	style := activeSectionStyle.Width(width).Height(height)

	d := m.activeDeck()
	if d == nil {
		return style.Render(helpStyle.Render("No decks loaded"))
	}

	name := m.activeID()
	if t := d.Title(); t != "" {
		name = t
	}
	titleText := fmt.Sprintf("%s  %d/%d cards", name, d.Remaining(), d.Table().Total())
	if d.AutoReshuffle() {
		titleText += " ↻"
	}
	title := chartTitleStyle.Render(titleText)

	chart := m.renderCountsChart(d, width-2)
	rows := renderCountRows(d, width-2)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, chart, rows))
}

// renderCountRows renders remaining/original per card type with a bar of
// filled blocks for remaining units and shaded blocks for drawn ones.
func renderCountRows(d *deck.Deck, width int) string {
	counts := d.Counts()

	nameWidth := 0
	maxOriginal := 0
	for _, c := range counts {
		if w := lipgloss.Width(c.Name); w > nameWidth {
			nameWidth = w
		}
		if c.Original > maxOriginal {
			maxOriginal = c.Original
		}
	}
	if nameWidth > 20 {
		nameWidth = 20
	}

	barWidth := width - nameWidth - 10
	if barWidth < 8 {
		barWidth = 8
	}
	if barWidth > maxOriginal {
		barWidth = maxOriginal
	}

	var lines []string
	for _, c := range counts {
		name := c.Name
		if lipgloss.Width(name) > nameWidth {
			name = truncateName(name, nameWidth)
		}

		fill := 0
		if maxOriginal > 0 {
			fill = c.Remaining * barWidth / maxOriginal
			if fill == 0 && c.Remaining > 0 {
				fill = 1
			}
		}
		total := c.Original * barWidth / maxOriginal
		if total < fill {
			total = fill
		}

		bar := barColor(c).Render(strings.Repeat("█", fill)) +
			helpStyle.Render(strings.Repeat("░", total-fill))

		pad := nameWidth - lipgloss.Width(name)
		if pad < 0 {
			pad = 0
		}
		line := fmt.Sprintf("%s%s %s %d/%d", name, strings.Repeat(" ", pad), bar, c.Remaining, c.Original)
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// truncateName trims name to at most width display cells, ending in an
// ellipsis. Trimming is by rune so multi-byte names stay valid UTF-8.
func truncateName(name string, width int) string {
	runes := []rune(name)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// countColor maps a card type's depletion to a color. Yellow starts at half
// remaining; red means exhausted.
func countColor(c deck.Count) lipgloss.Color {
	switch {
	case c.Remaining == 0:
		return ColorRed
	case c.Remaining*2 <= c.Original:
		return ColorYellow
	default:
		return ColorGreen
	}
}

func barColor(c deck.Count) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(countColor(c))
}

// renderHistoryPane renders the drawn-card log for the active deck.
func (m *TableModel) renderHistoryPane(width, height int) string {
	style := sectionStyle.Width(width).Height(height)

	d := m.activeDeck()
	if d == nil {
		return style.Render(helpStyle.Render("No history"))
	}

	title := chartTitleStyle.Render(fmt.Sprintf("Drawn (%d)", len(d.Drawn())))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.historyVP.View()))
}

// renderHistoryLines builds the content of the history viewport.
func (m *TableModel) renderHistoryLines() string {
	d := m.activeDeck()
	if d == nil {
		return ""
	}

	drawn := d.Drawn()
	if len(drawn) == 0 {
		return helpStyle.Render("Nothing drawn yet. Press d.")
	}

	var lines []string
	for i, name := range drawn {
		lines = append(lines, fmt.Sprintf("%3d. %s", i+1, name))
	}
	return strings.Join(lines, "\n")
}

// renderEventLine shows the outcome of the latest action.
func (m *TableModel) renderEventLine() string {
	var text string
	switch m.lastEventKind {
	case eventNone:
		text = helpStyle.Render("Press d to draw a card")
	case eventEmpty:
		text = warnStyle.Render(m.lastEvent)
	case eventReshuffle:
		text = warnStyle.Render(m.lastEvent)
	default:
		text = eventStyle.Render(m.lastEvent)
	}
	return lipgloss.NewStyle().Width(m.width).Render(" " + text)
}

// renderStatusLine renders the help hint line at the bottom of the screen.
func (m *TableModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite).
		Width(m.width)

	narrow := m.width < 80

	var statusText string
	if narrow {
		statusText = "d: Draw • r: Reset • s: Status • ?: Help • q: Quit"
	} else {
		statusText = "d: Draw • r: Reset • s: Status • Tab: Switch deck • ↑↓: History • ?: Help • q: Quit"
	}

	var left string
	if id := m.activeID(); id != "" {
		left = fmt.Sprintf("[%s] ", id)
	}

	return baseStyle.Render(" " + left + statusText)
}
