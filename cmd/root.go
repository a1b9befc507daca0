package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chorin/internal/cli"
	"github.com/thenoetrevino/chorin/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "chorin",
	Short: "Chorin - a terminal chore list",
	Long: `Chorin keeps a list of chores. Each due chore gets completed,
obviated or abrogated, and resolved chores never come back.

Run with no arguments to open the interactive list.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(cli.ListCmd())
}

// Execute runs the root command and returns its error for main to map to an exit code
func Execute() error {
	return rootCmd.Execute()
}
