package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chorin/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleConfirm handles the [y]es [n]o box for quick dispositions.
func (m Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.resolve(m.ConfirmState.Index(), m.ConfirmState.Disposition())
		m.ConfirmState.Reset()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "n", "N", "esc":
		m.ConfirmState.Reset()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
