package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Chore is a single unit of tracked work.
// Chores are values: a transition moves the same value between lists and never edits it.
type Chore struct {
	ID       uuid.UUID
	Title    string
	Cost     int // effort units, never negative
	Priority Priority
}

// NewChore validates the fields and returns a chore with a fresh identity
func NewChore(title string, cost int, priority Priority) (Chore, error) {
	if strings.TrimSpace(title) == "" {
		return Chore{}, ErrEmptyTitle
	}
	if cost < 0 {
		return Chore{}, ErrNegativeCost
	}
	if !priority.Valid() {
		return Chore{}, ErrInvalidPriority
	}

	return Chore{
		ID:       uuid.New(),
		Title:    title,
		Cost:     cost,
		Priority: priority,
	}, nil
}

// Label renders the chore the way the due list shows it: "title (priority) [cost]"
func (c Chore) Label() string {
	return fmt.Sprintf("%s (%s) [%d]", c.Title, c.Priority, c.Cost)
}
