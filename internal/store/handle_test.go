package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chorin/internal/events"
	"github.com/thenoetrevino/chorin/internal/models"
)

// recordingPublisher records events for verification in tests
type recordingPublisher struct {
	events []events.Event
	onPub  func(events.Event)
}

func (r *recordingPublisher) Publish(e events.Event) {
	r.events = append(r.events, e)
	if r.onPub != nil {
		r.onPub(e)
	}
}

func TestHandle_UpdateReleasesLease(t *testing.T) {
	h := NewHandle(Seed())

	err := h.Update(func(s *ChoreStore) error {
		assert.True(t, h.Leased(), "lease should be held inside Update")
		return nil
	})

	require.NoError(t, err)
	assert.False(t, h.Leased())
}

func TestHandle_UpdateReleasesLeaseOnError(t *testing.T) {
	h := NewHandle(Seed())
	boom := errors.New("boom")

	err := h.Update(func(*ChoreStore) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, h.Leased())
}

func TestHandle_UpdateReleasesLeaseOnPanic(t *testing.T) {
	h := NewHandle(Seed())

	assert.Panics(t, func() {
		_ = h.Update(func(*ChoreStore) error { panic("callback bug") })
	})
	assert.False(t, h.Leased(), "a panicking callback must not leak the lease")
}

func TestHandle_ReentrantUpdatePanics(t *testing.T) {
	h := NewHandle(Seed())

	assert.PanicsWithValue(t, ErrLeaseHeld, func() {
		_ = h.Update(func(*ChoreStore) error {
			return h.Update(func(*ChoreStore) error { return nil })
		})
	})
	assert.False(t, h.Leased())
}

func TestHandle_ViewInsideLeasePanics(t *testing.T) {
	h := NewHandle(Seed())

	assert.PanicsWithValue(t, ErrLeaseHeld, func() {
		_ = h.Update(func(*ChoreStore) error {
			h.View(func(*ChoreStore) {})
			return nil
		})
	})
}

func TestHandle_SequentialLeases(t *testing.T) {
	h := NewHandle(Seed())

	for i := range 3 {
		err := h.Update(func(s *ChoreStore) error {
			_, err := s.TransitionDue(0, models.Completed)
			return err
		})
		require.NoError(t, err, "lease %d", i)
	}
	assert.Equal(t, Counts{Completed: 3}, h.Counts())
}

func TestHandle_TransitionDue(t *testing.T) {
	pub := &recordingPublisher{}
	h := NewHandle(Seed(), WithPublisher(pub))

	moved, err := h.TransitionDue(0, models.Abrogated)

	require.NoError(t, err)
	assert.Equal(t, "Chore 1", moved.Title)
	assert.Equal(t, []string{"Chore 2 (mid) [3]", "Chore 3 (low) [1]"}, h.DueLabels())
	assert.Equal(t, Counts{Due: 2, Abrogated: 1}, h.Counts())

	require.Len(t, pub.events, 1)
	e := pub.events[0]
	assert.Equal(t, events.EventChoreResolved, e.Type)
	assert.Equal(t, moved.ID, e.ChoreID)
	assert.Equal(t, "Chore 1", e.Title)
	assert.Equal(t, models.Abrogated, e.Disposition)
	assert.Equal(t, 0, e.Index)
	assert.Equal(t, 2, e.RemainingDue)
}

func TestHandle_TransitionDueOutOfRangePublishesNothing(t *testing.T) {
	pub := &recordingPublisher{}
	h := NewHandle(Seed(), WithPublisher(pub))

	_, err := h.TransitionDue(5, models.Completed)

	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Empty(t, pub.events)
	assert.Equal(t, Counts{Due: 3}, h.Counts())
	assert.False(t, h.Leased())
}

func TestHandle_ListenersMayReadStore(t *testing.T) {
	var seen []string
	pub := &recordingPublisher{}
	h := NewHandle(Seed(), WithPublisher(pub))
	pub.onPub = func(events.Event) {
		// the lease is released before publishing
		seen = h.DueLabels()
	}

	_, err := h.TransitionDue(1, models.Obviated)

	require.NoError(t, err)
	assert.Equal(t, []string{"Chore 1 (high) [5]", "Chore 3 (low) [1]"}, seen)
}

func TestHandle_WithBus(t *testing.T) {
	bus := events.NewBus()
	var got []models.Disposition
	bus.Subscribe(func(e events.Event) { got = append(got, e.Disposition) })
	h := NewHandle(Seed(), WithPublisher(bus))

	_, err := h.TransitionDue(0, models.Completed)
	require.NoError(t, err)
	_, err = h.TransitionDue(0, models.Obviated)
	require.NoError(t, err)

	assert.Equal(t, []models.Disposition{models.Completed, models.Obviated}, got)
}

func TestHandle_NilPublisher(t *testing.T) {
	h := NewHandle(Seed())

	assert.NotPanics(t, func() {
		_, err := h.TransitionDue(0, models.Completed)
		assert.NoError(t, err)
	})
}

func TestHandle_ProfileName(t *testing.T) {
	assert.Equal(t, SeedProfileName, NewHandle(Seed()).ProfileName())
}

func TestHandle_DueAt(t *testing.T) {
	h := NewHandle(Seed())

	c, err := h.DueAt(1)
	require.NoError(t, err)
	assert.Equal(t, "Chore 2 (mid) [3]", c.Label())
	assert.False(t, h.Leased())

	_, err = h.TransitionDue(1, models.Completed)
	require.NoError(t, err)

	c, err = h.DueAt(1)
	require.NoError(t, err)
	assert.Equal(t, "Chore 3", c.Title)

	_, err = h.DueAt(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
