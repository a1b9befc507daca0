// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chorin/internal/config/colors"
	"github.com/thenoetrevino/chorin/internal/models"
	"github.com/thenoetrevino/chorin/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// GreetingStyle defines the header line
	GreetingStyle lipgloss.Style

	// PanelStyle defines the box around the due list
	PanelStyle lipgloss.Style

	// ChoreStyle defines an unselected chore row
	ChoreStyle lipgloss.Style

	// SelectedChoreStyle defines the row under the cursor
	SelectedChoreStyle lipgloss.Style

	// HintStyle defines the dimmed key hints under the list
	HintStyle lipgloss.Style

	// HintKeyStyle highlights the key inside a hint
	HintKeyStyle lipgloss.Style

	// EmptyStyle defines the message shown when nothing is due
	EmptyStyle lipgloss.Style

	// ConfirmBoxStyle defines the [y]es [n]o dialog, recolored per disposition
	ConfirmBoxStyle lipgloss.Style

	// FormBoxStyle defines the base style for the disposition form
	FormBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help overlay
	HelpBoxStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages
	ErrorBannerStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	theme.Init(colors)

	GreetingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.PanelBorder)).
		PaddingLeft(1).
		PaddingRight(1)

	ChoreStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SelectedChoreStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent)).
		Background(lipgloss.Color(colors.SelectedBg))

	HintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	HintKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	EmptyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Italic(true)

	ConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.SelectedBorder)).
		Padding(1, 2)

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Bold(true).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Bold(true).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.StatusBarBg)).
		Foreground(lipgloss.Color(colors.StatusBarText))
}

// DispositionColor returns the theme color for a disposition
func DispositionColor(d models.Disposition) string {
	switch d {
	case models.Completed:
		return theme.Complete
	case models.Obviated:
		return theme.Obviate
	case models.Abrogated:
		return theme.Abrogate
	default:
		return theme.Highlight
	}
}

// PriorityColor returns the theme color for a priority
func PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return theme.PriorityHigh
	case models.PriorityMid:
		return theme.PriorityMid
	default:
		return theme.PriorityLow
	}
}
