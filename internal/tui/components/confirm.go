package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/chorin/internal/models"
)

// ConfirmProps describes a pending quick disposition
type ConfirmProps struct {
	Label       string
	Disposition models.Disposition
	Width       int
}

// RenderConfirm renders the "{Verb} '{label}'?" dialog with [y]es [n]o.
// Long labels are wrapped to the box instead of stretching it.
func RenderConfirm(props ConfirmProps) string {
	inner := max(props.Width-confirmBoxChrome, 10)
	question := fmt.Sprintf("%s '%s'?", props.Disposition.Verb(), props.Label)
	body := wordwrap.String(question, inner) + "\n\n[y]es  [n]o"

	return ConfirmBoxStyle.
		BorderForeground(lipgloss.Color(DispositionColor(props.Disposition))).
		Width(props.Width).
		Render(body)
}
