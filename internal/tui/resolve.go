package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/chorin/internal/models"
	"github.com/thenoetrevino/chorin/internal/store"
	"github.com/thenoetrevino/chorin/internal/tui/state"
)

// resolve moves the due chore at index into d's list.
// Both the quick keys and the form end up here. The list and tally refresh
// themselves from the bus; this only reports the outcome.
func (m Model) resolve(index int, d models.Disposition) {
	chore, err := m.App.Chores.TransitionDue(index, d)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrOutOfRange):
			m.NotificationState.Add(state.LevelError, "That chore is no longer due")
		default:
			slog.Error("Error resolving chore", "index", index, "error", err)
			m.NotificationState.Add(state.LevelError, "Could not resolve chore")
		}
		return
	}

	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("%s '%s'", pastTense(d), chore.Title))
}

// pastTense returns "Completed", "Obviated" or "Abrogated"
func pastTense(d models.Disposition) string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
