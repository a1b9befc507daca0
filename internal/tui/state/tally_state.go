package state

import (
	"github.com/thenoetrevino/chorin/internal/events"
	"github.com/thenoetrevino/chorin/internal/models"
)

// TallyState counts resolutions this session for the status bar.
// It is fed by the event bus rather than by the handlers that cause transitions.
type TallyState struct {
	counts map[models.Disposition]int
	last   string
}

// NewTallyState creates a zeroed tally.
func NewTallyState() *TallyState {
	return &TallyState{counts: make(map[models.Disposition]int)}
}

// Record is an events.Listener that counts resolved chores.
func (s *TallyState) Record(e events.Event) {
	if e.Type != events.EventChoreResolved {
		return
	}
	s.counts[e.Disposition]++
	s.last = e.Title
}

// Count returns how many chores received d.
func (s *TallyState) Count(d models.Disposition) int {
	return s.counts[d]
}

// Total returns the number of resolutions recorded.
func (s *TallyState) Total() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Last returns the title of the most recently resolved chore.
func (s *TallyState) Last() string {
	return s.last
}
