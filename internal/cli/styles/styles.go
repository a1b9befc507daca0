package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chorin/internal/config"
	"github.com/thenoetrevino/chorin/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Due:", "Completed:"
	ValueStyle    lipgloss.Style // For field values

	// priorityColors tints chore labels by priority
	priorityColors = map[models.Priority]string{}
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	priorityColors = map[models.Priority]string{
		models.PriorityLow:  colors.PriorityLow,
		models.PriorityMid:  colors.PriorityMid,
		models.PriorityHigh: colors.PriorityHigh,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderChoreLine renders "{n}. {label}" with the label tinted by priority
func RenderChoreLine(n int, label string, p models.Priority) string {
	number := SubtitleStyle.Render(fmt.Sprintf("%3d. ", n))
	color, ok := priorityColors[p]
	if !ok {
		return number + ValueStyle.Render(label)
	}
	return number + ColoredText(label, color)
}
