package store

import (
	"log/slog"
	"sync/atomic"

	"github.com/thenoetrevino/chorin/internal/events"
	"github.com/thenoetrevino/chorin/internal/models"
)

// Option is a functional option for configuring a Handle
type Option func(*Handle)

// WithPublisher sets where transition events are announced
func WithPublisher(p events.Publisher) Option {
	return func(h *Handle) {
		h.publisher = p
	}
}

// WithLogger sets the logger for the handle
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handle) {
		h.logger = logger
	}
}

// Handle is the one shared reference to a ChoreStore that every UI callback
// reaches the store through.
//
// Mutation happens inside a lease: Update hands the callback exclusive access
// and takes it back when the callback returns, panics included. Only one lease
// may exist at a time. Asking for the store while a lease is outstanding means a
// callback re-entered the handle from inside its own lease, which is a
// programming error and panics with ErrLeaseHeld.
type Handle struct {
	store     *ChoreStore
	leased    atomic.Bool
	publisher events.Publisher
	logger    *slog.Logger
}

// NewHandle wraps s. The handle is the only path to s from here on.
func NewHandle(s *ChoreStore, opts ...Option) *Handle {
	h := &Handle{store: s}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h
}

// Update runs fn with an exclusive lease on the store and returns fn's error.
func (h *Handle) Update(fn func(*ChoreStore) error) error {
	h.acquire()
	defer h.release()
	return fn(h.store)
}

// View runs fn with read access to the store. fn must not mutate it.
func (h *Handle) View(fn func(*ChoreStore)) {
	if h.leased.Load() {
		panic(ErrLeaseHeld)
	}
	fn(h.store)
}

// Leased reports whether a lease is currently outstanding
func (h *Handle) Leased() bool {
	return h.leased.Load()
}

func (h *Handle) acquire() {
	if !h.leased.CompareAndSwap(false, true) {
		panic(ErrLeaseHeld)
	}
}

func (h *Handle) release() {
	h.leased.Store(false)
}

// TransitionDue moves the due chore at index to the list named by d under a
// lease, then announces the move once the lease is released.
func (h *Handle) TransitionDue(index int, d models.Disposition) (models.Chore, error) {
	var (
		chore     models.Chore
		remaining int
	)
	err := h.Update(func(s *ChoreStore) error {
		var err error
		chore, err = s.TransitionDue(index, d)
		remaining = len(s.due)
		return err
	})
	if err != nil {
		h.logger.Warn("chore transition rejected",
			"index", index,
			"disposition", d.String(),
			"error", err)
		return models.Chore{}, err
	}

	h.logger.Info("chore resolved",
		"chore_id", chore.ID.String(),
		"title", chore.Title,
		"disposition", d.String(),
		"remaining_due", remaining)

	h.publishResolved(chore, d, index, remaining)
	return chore, nil
}

// ProfileName returns the store's profile name
func (h *Handle) ProfileName() string {
	var name string
	h.View(func(s *ChoreStore) { name = s.ProfileName() })
	return name
}

// DueLabels collects the current (index, label) view into a slice
func (h *Handle) DueLabels() []string {
	var labels []string
	h.View(func(s *ChoreStore) {
		for _, label := range s.ListDue() {
			labels = append(labels, label)
		}
	})
	return labels
}

// DueAt returns the chore currently due at index
func (h *Handle) DueAt(index int) (models.Chore, error) {
	var (
		chore models.Chore
		err   error
	)
	h.View(func(s *ChoreStore) { chore, err = s.DueAt(index) })
	return chore, err
}

// Counts returns the current length of each list
func (h *Handle) Counts() Counts {
	var c Counts
	h.View(func(s *ChoreStore) { c = s.Counts() })
	return c
}

// publishResolved publishes a resolution event (if a publisher exists)
func (h *Handle) publishResolved(chore models.Chore, d models.Disposition, index, remaining int) {
	if h.publisher == nil {
		return
	}
	h.publisher.Publish(events.Event{
		Type:         events.EventChoreResolved,
		ChoreID:      chore.ID,
		Title:        chore.Title,
		Disposition:  d,
		Index:        index,
		RemainingDue: remaining,
	})
}
