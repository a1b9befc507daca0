package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/chorin/internal/tui/state"
)

// updateDispositionForm handles all messages when in DispositionFormMode
func (m Model) updateDispositionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.DispositionForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.closeDispositionForm()
			return m, tea.ClearScreen
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetWidth(size.Width)
		m.UiState.SetHeight(size.Height)
	}

	model, cmd := m.FormState.DispositionForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.DispositionForm = form
	}

	switch m.FormState.DispositionForm.State {
	case huh.StateCompleted:
		m.applyDispositionChoice()
		m.closeDispositionForm()
		return m, tea.ClearScreen
	case huh.StateAborted:
		m.closeDispositionForm()
		return m, tea.ClearScreen
	}

	return m, cmd
}

// applyDispositionChoice resolves the chore the form was opened for.
// Cancel leaves the store untouched.
func (m Model) applyDispositionChoice() {
	if !m.FormState.Choice.Valid() {
		return
	}
	m.resolve(m.FormState.Index, m.FormState.Choice)
}

func (m Model) closeDispositionForm() {
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
}
