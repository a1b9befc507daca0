package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chorin/internal/app"
	"github.com/thenoetrevino/chorin/internal/cli/styles"
	"github.com/thenoetrevino/chorin/internal/config"
	"github.com/thenoetrevino/chorin/internal/logging"
	"github.com/thenoetrevino/chorin/internal/models"
	"github.com/thenoetrevino/chorin/internal/store"
)

// DueItem is one row of the due list in command output
type DueItem struct {
	Index    int       `json:"index"`
	Label    string    `json:"label"`
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Cost     int       `json:"cost"`
	Priority string    `json:"priority"`

	priority models.Priority
}

// DueList is the result of `chorin list`
type DueList struct {
	Profile string       `json:"profile"`
	Due     []DueItem    `json:"due"`
	Counts  store.Counts `json:"counts"`
}

// QuietLines prints one label per line
func (l DueList) QuietLines() []string {
	lines := make([]string, len(l.Due))
	for i, item := range l.Due {
		lines[i] = item.Label
	}
	return lines
}

// Human prints the profile header and the numbered due list
func (l DueList) Human(w io.Writer) error {
	lines := []string{
		styles.TitleStyle.Render(l.Profile),
		"",
	}
	if len(l.Due) == 0 {
		lines = append(lines, styles.SubtitleStyle.Render("Nothing due."))
	}
	for _, item := range l.Due {
		lines = append(lines, styles.RenderChoreLine(item.Index+1, item.Label, item.priority))
	}
	lines = append(lines, "",
		styles.LabelStyle.Render("Due: ")+styles.ValueStyle.Render(fmt.Sprint(l.Counts.Due))+
			styles.SubtitleStyle.Render(fmt.Sprintf("  of %d", l.Counts.Total())),
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// CollectDueList reads the due list and counts through the handle
func CollectDueList(h *store.Handle) DueList {
	list := DueList{
		Profile: h.ProfileName(),
		Due:     []DueItem{},
		Counts:  h.Counts(),
	}
	h.View(func(s *store.ChoreStore) {
		for i, c := range s.Due() {
			list.Due = append(list.Due, DueItem{
				Index:    i,
				Label:    c.Label(),
				ID:       c.ID,
				Title:    c.Title,
				Cost:     c.Cost,
				Priority: c.Priority.String(),
				priority: c.Priority,
			})
		}
	})
	return list
}

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List due chores",
		Long:  "Print the due chores of the startup profile, numbered from 1.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (labels only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	logging.Discard()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	if jsonOutput && quietMode {
		err := errors.New("--json and --quiet cannot be used together")
		if fmtErr := formatter.ErrorWithSuggestion("USAGE_ERROR", err.Error(), "Pick one output mode"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return &ExitCodeError{Code: ExitUsage, Err: err}
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load configuration, using defaults", "error", err)
		cfg = config.Default()
	}
	styles.Init(cfg.ColorScheme)

	application := app.NewSeeded()
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("Error closing app", "error", err)
		}
	}()

	if err := formatter.Success(CollectDueList(application.Chores)); err != nil {
		return &ExitCodeError{Code: ExitError, Err: err}
	}
	return nil
}
