package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a full-screen overlay with scrollable content. The table screen
// owns at most one at a time; Escape closes it.
type Modal interface {
	ID() string
	Handle(msg tea.KeyMsg)
	Resize(width, height int)
	View() string
}

// contentModal is the shared scrollable-modal implementation.
type contentModal struct {
	id       string
	title    string
	viewport viewport.Model
	content  string
	width    int
	height   int
}

func newContentModal(id, title, content string, width, height int) *contentModal {
	m := &contentModal{
		id:       id,
		title:    title,
		viewport: viewport.New(80, 20),
		content:  content,
	}
	m.Resize(width, height)
	return m
}

func (m *contentModal) ID() string { return m.id }

func (m *contentModal) Handle(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		m.viewport.ScrollUp(1)
	case "down", "j":
		m.viewport.ScrollDown(1)
	case "pgup":
		m.viewport.HalfPageUp()
	case "pgdown":
		m.viewport.HalfPageDown()
	}
}

func (m *contentModal) Resize(width, height int) {
	m.width = width
	m.height = height

	contentWidth, contentHeight := m.contentDims()
	m.viewport.Width = contentWidth
	m.viewport.Height = contentHeight
	m.viewport.SetContent(m.content)
}

func (m *contentModal) contentDims() (w, h int) {
	modalWidth := m.width - 8   // 4 chars margin on each side
	modalHeight := m.height - 4 // 2 lines margin top and bottom
	w = modalWidth - 4          // modal borders
	h = modalHeight - 4         // header + status
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	return w, h
}

func (m *contentModal) View() string {
	contentWidth, contentHeight := m.contentDims()

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(m.viewport.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render(m.title)

	statusBar := renderModalStatusBar()

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(contentWidth + 4).
		Height(contentHeight + 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, finalModal)
}

// renderModalStatusBar renders the status bar for modals.
func renderModalStatusBar() string {
	statusItems := []string{"up/down: Scroll", "PgUp/PgDn: Page", "ESC: Close"}
	return helpStyle.Render(strings.Join(statusItems, " | "))
}
