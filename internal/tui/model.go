package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chorin/internal/app"
	"github.com/thenoetrevino/chorin/internal/config"
	"github.com/thenoetrevino/chorin/internal/events"
	"github.com/thenoetrevino/chorin/internal/tui/components"
	"github.com/thenoetrevino/chorin/internal/tui/state"
)

// Model represents the application state for the TUI.
// The state pieces are pointers so that copies made by Update share them
// with the event bus listeners registered in InitialModel.
type Model struct {
	App    *app.App
	Config *config.Config

	keys     keyMap
	Greeting string

	UiState           *state.UIState
	DueList           *state.DueListState
	ConfirmState      *state.ConfirmState
	FormState         *state.FormState
	TallyState        *state.TallyState
	NotificationState *state.NotificationState

	unsubscribe []func()
}

// ModelOption configures a Model
type ModelOption func(*modelConfig)

type modelConfig struct {
	pick func(n int) int
}

// WithGreetingPicker fixes how the header greeting is chosen
func WithGreetingPicker(pick func(n int) int) ModelOption {
	return func(c *modelConfig) {
		c.pick = pick
	}
}

// InitialModel creates the TUI model over a. The due list and tally follow
// the store through a's event bus; call Close to detach them.
func InitialModel(a *app.App, cfg *config.Config, opts ...ModelOption) Model {
	mc := &modelConfig{}
	for _, opt := range opts {
		opt(mc)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	components.InitStyles(cfg.ColorScheme)

	m := Model{
		App:               a,
		Config:            cfg,
		keys:              newKeyMap(cfg.KeyMappings),
		Greeting:          greeting(a.Chores.ProfileName(), mc.pick),
		UiState:           state.NewUIState(),
		DueList:           state.NewDueListState(),
		ConfirmState:      state.NewConfirmState(),
		FormState:         state.NewFormState(),
		TallyState:        state.NewTallyState(),
		NotificationState: state.NewNotificationState(),
	}

	m.DueList.Sync(a.Chores.DueLabels())

	dueList := m.DueList
	m.unsubscribe = append(m.unsubscribe,
		a.Events.Subscribe(func(events.Event) {
			dueList.Sync(a.Chores.DueLabels())
		}),
		a.Events.Subscribe(m.TallyState.Record),
	)

	slog.Debug("tui model initialized",
		"profile", a.Chores.ProfileName(),
		"due", m.DueList.Len())

	return m
}

// Init returns an initial command for the application to run
func (m Model) Init() tea.Cmd {
	return nil
}

// Close detaches the model's bus listeners
func (m Model) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
}
