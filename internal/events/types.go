package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/chorin/internal/models"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventChoreResolved is sent after a due chore moved to a terminal list
	EventChoreResolved EventType = "chore_resolved"
)

// Event describes a completed change to the chore store.
// It is only published once the store is consistent again, so listeners may
// read the store while handling it.
type Event struct {
	Type         EventType
	ChoreID      uuid.UUID
	Title        string
	Disposition  models.Disposition
	Index        int       // position the chore held in the due list
	RemainingDue int       // due list length after the transition
	Timestamp    time.Time // When the event occurred
	SequenceID   int64     // Monotonically increasing sequence number for ordering
}

// Listener receives published events
type Listener func(Event)
