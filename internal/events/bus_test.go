package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chorin/internal/models"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.Subscribe(func(Event) { got = append(got, "first") })
	bus.Subscribe(func(Event) { got = append(got, "second") })

	bus.Publish(Event{Type: EventChoreResolved})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestBus_SequenceIsMonotonic(t *testing.T) {
	bus := NewBus()
	var seqs []int64
	bus.Subscribe(func(e Event) { seqs = append(seqs, e.SequenceID) })

	for range 3 {
		bus.Publish(Event{Type: EventChoreResolved})
	}

	assert.Equal(t, []int64{1, 2, 3}, seqs)
}

func TestBus_StampsTimestamp(t *testing.T) {
	bus := NewBus()
	fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	bus.now = func() time.Time { return fixed }

	var got Event
	bus.Subscribe(func(e Event) { got = e })

	bus.Publish(Event{Type: EventChoreResolved, Disposition: models.Obviated, Title: "Chore 2"})
	assert.Equal(t, fixed, got.Timestamp)
	assert.Equal(t, models.Obviated, got.Disposition)
	assert.Equal(t, "Chore 2", got.Title)

	// A caller-provided timestamp is kept
	earlier := fixed.Add(-time.Hour)
	bus.Publish(Event{Type: EventChoreResolved, Timestamp: earlier})
	assert.Equal(t, earlier, got.Timestamp)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(Event) { calls++ })
	require.Equal(t, 1, bus.Len())

	bus.Publish(Event{})
	unsubscribe()
	unsubscribe() // second call is a no-op
	bus.Publish(Event{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestBus_NilListenerIgnored(t *testing.T) {
	bus := NewBus()
	unsubscribe := bus.Subscribe(nil)
	unsubscribe()

	assert.Equal(t, 0, bus.Len())
	assert.NotPanics(t, func() { bus.Publish(Event{}) })
}

func TestBus_ListenerMaySubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	late := 0
	bus.Subscribe(func(Event) {
		bus.Subscribe(func(Event) { late++ })
	})

	bus.Publish(Event{})
	assert.Equal(t, 0, late, "listener added during publish should not see the current event")

	bus.Publish(Event{})
	assert.Equal(t, 1, late)
}
