// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

const (
	// ConfirmBoxWidth is the outer width of the [y]es [n]o box
	ConfirmBoxWidth = 50

	// FormWidth is the outer width of the disposition form box
	FormWidth = 54

	// HelpWidthNumerator and HelpWidthDivisor size the help overlay (3/5 of the screen)
	HelpWidthNumerator = 3
	HelpWidthDivisor   = 5

	HelpMinWidth = 40
	HelpMaxWidth = 80
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with ui.Width() and ui.Height() as dimensions.
//
// Parameters:
//   - content: the rendered content to center
//   - screenWidth: the width of the screen
//   - screenHeight: the height of the screen
//
// Returns:
//   - A layer positioned at the center of the screen, or nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// HelpWidth returns the help overlay width for a screen of the given width
func HelpWidth(screenWidth int) int {
	w := screenWidth * HelpWidthNumerator / HelpWidthDivisor
	w = max(w, HelpMinWidth)
	w = min(w, HelpMaxWidth)
	return min(w, screenWidth)
}
