package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chorin/internal/app"
	"github.com/thenoetrevino/chorin/internal/config"
	"github.com/thenoetrevino/chorin/internal/logging"
	"github.com/thenoetrevino/chorin/internal/tui"
)

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application := app.NewSeeded(app.WithLogger(logging.Logger))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	model := tui.InitialModel(application, cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		// A signal cancels the program's context; that is a normal way out
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	counts := application.Chores.Counts()
	slog.Info("session ended",
		"due", counts.Due,
		"completed", counts.Completed,
		"obviated", counts.Obviated,
		"abrogated", counts.Abrogated)

	return nil
}
