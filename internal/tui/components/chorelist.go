package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/chorin/internal/models"
)

// ChoreListProps carries what the due list needs to draw itself
type ChoreListProps struct {
	Labels []string
	Cursor int
	Offset int
	Height int
	Width  int
}

// ListWidth returns the panel width for a terminal of the given width
func ListWidth(screenWidth int) int {
	return max(min(screenWidth-2, maxListWidth), minListWidth)
}

// RenderChoreList renders the due chores as a numbered list inside a panel
//
//	╭──────────────────────────────╮
//	│ 1. Chore 1 (high) [5]        │
//	│ 2. Chore 2 (mid) [3]         │
//	╰──────────────────────────────╯
func RenderChoreList(props ChoreListProps) string {
	inner := max(props.Width-listChromeWidth, 1)

	if len(props.Labels) == 0 {
		return PanelStyle.Width(props.Width).Render(EmptyStyle.Render(EmptyListMessage))
	}

	end := len(props.Labels)
	if props.Height > 0 {
		end = min(props.Offset+props.Height, end)
	}

	rows := make([]string, 0, end-props.Offset)
	for i := props.Offset; i < end; i++ {
		rows = append(rows, RenderChoreRow(i, props.Labels[i], i == props.Cursor, inner))
	}

	return PanelStyle.Width(props.Width).Render(strings.Join(rows, "\n"))
}

// RenderChoreRow renders one "{n}. {label}" row, numbered from 1.
// The priority segment of the label is tinted unless the row is selected.
func RenderChoreRow(index int, label string, selected bool, width int) string {
	prefix := fmt.Sprintf("%d. ", index+1)
	if selected {
		return SelectedChoreStyle.Width(width).Render(prefix + label)
	}
	return ChoreStyle.Render(prefix) + tintPriority(label)
}

// tintPriority colors the "(priority)" segment of a "{title} ({priority}) [{cost}]" label.
// Labels that don't have the segment are returned in the plain row style.
func tintPriority(label string) string {
	lparen := strings.LastIndex(label, " (")
	if lparen < 0 {
		return ChoreStyle.Render(label)
	}
	rparen := strings.Index(label[lparen:], ")")
	if rparen < 0 {
		return ChoreStyle.Render(label)
	}
	rparen += lparen

	p, err := models.ParsePriority(label[lparen+2 : rparen])
	if err != nil {
		return ChoreStyle.Render(label)
	}

	tint := lipgloss.NewStyle().Foreground(lipgloss.Color(PriorityColor(p)))
	return ChoreStyle.Render(label[:lparen+1]) +
		tint.Render(label[lparen+1:rparen+1]) +
		ChoreStyle.Render(label[rparen+1:])
}

// RenderHints renders the two key hint lines under the list
func RenderHints() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHintLine(HintFooter),
		renderHintLine(HintNavigation),
	)
}

// renderHintLine highlights each "(key)" in a hint line
func renderHintLine(line string) string {
	var b strings.Builder
	for len(line) > 0 {
		lparen := strings.Index(line, "(")
		if lparen < 0 {
			b.WriteString(HintStyle.Render(line))
			break
		}
		rparen := strings.Index(line[lparen:], ")")
		if rparen < 0 {
			b.WriteString(HintStyle.Render(line))
			break
		}
		rparen += lparen
		if lparen > 0 {
			b.WriteString(HintStyle.Render(line[:lparen]))
		}
		b.WriteString(HintKeyStyle.Render(line[lparen : rparen+1]))
		line = line[rparen+1:]
	}
	return b.String()
}
