package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chorin/internal/models"
)

// StatusBarProps carries the session tally shown in the status bar
type StatusBarProps struct {
	Width   int
	Profile string
	Due     int
	Tally   map[models.Disposition]int

	// Last is the title of the most recently resolved chore, if any
	Last string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "{profile} · {n} due"
// Right side: last resolved chore and per-disposition tally. The last
// resolved chore is left out when the bar would overflow Width.
func RenderStatusBar(props StatusBarProps) string {
	leftText := fmt.Sprintf(" %s · %d due", props.Profile, props.Due)

	parts := make([]string, 0, len(models.Dispositions))
	for _, d := range models.Dispositions {
		parts = append(parts, fmt.Sprintf("%s %d", d.String(), props.Tally[d]))
	}
	rightText := strings.Join(parts, " · ") + " "
	if props.Last != "" {
		withLast := "last: " + props.Last + " · " + rightText
		if lipgloss.Width(leftText)+lipgloss.Width(withLast)+1 <= props.Width {
			rightText = withLast
		}
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	return StatusBarStyle.Render(leftText + strings.Repeat(" ", gapWidth) + rightText)
}

// NotificationProps is one banner to draw above the status bar
type NotificationProps struct {
	Message string
	IsError bool
}

// RenderNotifications renders notifications as stacked banners, newest last
func RenderNotifications(notes []NotificationProps) string {
	if len(notes) == 0 {
		return ""
	}
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		if n.IsError {
			lines = append(lines, ErrorBannerStyle.Render(n.Message))
		} else {
			lines = append(lines, InfoBannerStyle.Render(n.Message))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
