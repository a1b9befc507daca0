package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chorin/internal/models"
	"github.com/thenoetrevino/chorin/internal/tui/components"
	"github.com/thenoetrevino/chorin/internal/tui/layers"
	"github.com/thenoetrevino/chorin/internal/tui/state"
	"github.com/thenoetrevino/chorin/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderMain()),
		lipgloss.NewLayer(m.renderStatusBar()).Y(max(m.UiState.Height()-1, 0)),
	}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.ConfirmMode:
		modal = m.renderConfirmLayer()
	case state.DispositionFormMode:
		modal = m.renderDispositionFormLayer()
	case state.HelpMode:
		modal = m.renderHelpLayer()
	}
	if modal != nil {
		layerStack = append(layerStack, modal)
	}

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// renderMain renders the greeting, due list, hints and notifications
func (m Model) renderMain() string {
	visible := m.UiState.ContentHeight()
	list := components.RenderChoreList(components.ChoreListProps{
		Labels: m.DueList.Labels(),
		Cursor: m.DueList.Cursor(),
		Offset: m.DueList.ScrollOffset(visible),
		Height: visible,
		Width:  components.ListWidth(m.UiState.Width()),
	})

	sections := []string{
		components.GreetingStyle.Render(m.Greeting),
		"",
		list,
		"",
		components.RenderHints(),
	}

	if m.NotificationState.HasAny() {
		notes := make([]components.NotificationProps, 0, len(m.NotificationState.All()))
		for _, n := range m.NotificationState.All() {
			notes = append(notes, components.NotificationProps{
				Message: n.Message,
				IsError: n.Level == state.LevelError,
			})
		}
		sections = append(sections, "", components.RenderNotifications(notes))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m Model) renderStatusBar() string {
	tally := make(map[models.Disposition]int, len(models.Dispositions))
	for _, d := range models.Dispositions {
		tally[d] = m.TallyState.Count(d)
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width:   m.UiState.Width(),
		Profile: m.App.Chores.ProfileName(),
		Due:     m.DueList.Len(),
		Tally:   tally,
		Last:    m.TallyState.Last(),
	})
}

// renderConfirmLayer renders the [y]es [n]o box as a centered layer
func (m Model) renderConfirmLayer() *lipgloss.Layer {
	if !m.ConfirmState.IsOpen() {
		return nil
	}
	box := components.RenderConfirm(components.ConfirmProps{
		Label:       m.ConfirmState.Label(),
		Disposition: m.ConfirmState.Disposition(),
		Width:       min(layers.ConfirmBoxWidth, m.UiState.Width()),
	})
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderDispositionFormLayer renders the huh form as a centered layer
func (m Model) renderDispositionFormLayer() *lipgloss.Layer {
	if m.FormState.DispositionForm == nil {
		return nil
	}
	box := components.FormBoxStyle.
		Width(min(layers.FormWidth, m.UiState.Width())).
		Render(m.FormState.DispositionForm.View())
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the help overlay as a centered layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	width := layers.HelpWidth(m.UiState.Width())
	body := components.RenderHelp(components.HelpProps{
		Keys:  m.Config.KeyMappings,
		Width: max(width-6, 20),
	})
	box := components.HelpBoxStyle.Width(width).Render(body)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
