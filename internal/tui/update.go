package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var _ tea.Model = (*TableModel)(nil)

func (m *TableModel) Init() tea.Cmd { return nil }

// Update handles messages for the table screen.
func (m *TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		if m.modal != nil {
			m.modal.Resize(m.width, m.height)
		}

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *TableModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Force quit works everywhere, even under a modal.
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	if m.modal != nil {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
			m.modal = nil
		case key.Matches(msg, m.keys.Help) && m.modal.ID() == "help":
			m.modal = nil
		case key.Matches(msg, m.keys.Status) && m.modal.ID() == "status":
			m.modal = nil
		default:
			m.modal.Handle(msg)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.modal = NewHelpModal(m.width, m.height)

	case key.Matches(msg, m.keys.Status):
		m.modal = NewStatusModal(m.manager, m.width, m.height)

	case key.Matches(msg, m.keys.Draw):
		m.drawCard()

	case key.Matches(msg, m.keys.Reset):
		m.resetDeck()

	case key.Matches(msg, m.keys.NextDeck):
		m.nextDeck()
		m.refreshHistory()

	case key.Matches(msg, m.keys.PrevDeck):
		m.prevDeck()
		m.refreshHistory()

	case key.Matches(msg, m.keys.Up):
		m.historyVP.ScrollUp(1)

	case key.Matches(msg, m.keys.Down):
		m.historyVP.ScrollDown(1)
	}

	return nil
}
