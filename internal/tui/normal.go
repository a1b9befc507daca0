package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chorin/internal/models"
	"github.com/thenoetrevino/chorin/internal/tui/huhforms"
	"github.com/thenoetrevino/chorin/internal/tui/state"
)

// handleNormalMode handles keyboard input in normal navigation mode.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Banners last until the next key
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.DueList.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.DueList.MoveDown()
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.Resolve):
		return m.handleOpenDispositionForm()
	case key.Matches(msg, m.keys.Complete):
		return m.handleQuickDisposition(models.Completed)
	case key.Matches(msg, m.keys.Obviate):
		return m.handleQuickDisposition(models.Obviated)
	case key.Matches(msg, m.keys.Abrogate):
		return m.handleQuickDisposition(models.Abrogated)
	}
	return m, nil
}

// handleQuickDisposition opens the [y]es [n]o box for the selected chore.
func (m Model) handleQuickDisposition(d models.Disposition) (tea.Model, tea.Cmd) {
	chore, ok := m.selectedChore()
	if !ok {
		return m, nil
	}
	m.ConfirmState.Open(m.DueList.Cursor(), d, chore.Label())
	m.UiState.SetMode(state.ConfirmMode)
	return m, nil
}

// handleOpenDispositionForm opens the four-way disposition form for the selected chore.
func (m Model) handleOpenDispositionForm() (tea.Model, tea.Cmd) {
	chore, ok := m.selectedChore()
	if !ok {
		return m, nil
	}
	label := chore.Label()

	m.FormState.Clear()
	m.FormState.Index = m.DueList.Cursor()
	m.FormState.Label = label
	m.FormState.Choice = models.Completed
	m.FormState.DispositionForm = huhforms.CreateDispositionForm(
		label,
		&m.FormState.Choice,
	).WithTheme(huhforms.CreateChorinTheme(m.Config.ColorScheme))

	m.UiState.SetMode(state.DispositionFormMode)
	return m, m.FormState.DispositionForm.Init()
}

// selectedChore reads the chore under the cursor from the store.
// It reports an error banner and false when nothing is due there.
func (m Model) selectedChore() (models.Chore, bool) {
	if m.DueList.Empty() {
		m.NotificationState.Add(state.LevelError, "Nothing is due")
		return models.Chore{}, false
	}
	chore, err := m.App.Chores.DueAt(m.DueList.Cursor())
	if err != nil {
		m.NotificationState.Add(state.LevelError, "That chore is no longer due")
		return models.Chore{}, false
	}
	return chore, true
}
