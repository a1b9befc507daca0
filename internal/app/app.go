package app

import (
	"log/slog"

	"github.com/thenoetrevino/chorin/internal/events"
	"github.com/thenoetrevino/chorin/internal/store"
)

// App holds the one chore store handle for the process and the event bus that
// keeps views in step with it.
// It is built once at startup and passed explicitly to the presentation layer.
type App struct {
	// Chores is the only route to the chore store
	Chores *store.Handle

	// Events fans out store changes to every interested view
	Events *events.Bus

	logger      *slog.Logger
	unsubscribe func()
}

// New creates an App around s.
func New(s *store.ChoreStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.bus == nil {
		cfg.bus = events.NewBus()
	}

	a := &App{
		Events: cfg.bus,
		logger: cfg.logger,
		Chores: store.NewHandle(s,
			store.WithPublisher(cfg.bus),
			store.WithLogger(cfg.logger),
		),
	}

	// Audit trail of every resolution
	a.unsubscribe = a.Events.Subscribe(a.logResolution)

	return a
}

// NewSeeded creates an App over the startup fixture
func NewSeeded(opts ...Option) *App {
	return New(store.Seed(), opts...)
}

func (a *App) logResolution(e events.Event) {
	a.logger.Debug("chore event",
		"type", string(e.Type),
		"sequence", e.SequenceID,
		"chore_id", e.ChoreID.String(),
		"disposition", e.Disposition.String(),
		"remaining_due", e.RemainingDue)
}

// Close detaches the app's own listeners from the bus.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	return nil
}
