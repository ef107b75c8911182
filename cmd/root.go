// Package cmd assembles the tally command tree.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli/row"
	"github.com/thenoetrevino/tally/internal/cli/score"
	"github.com/thenoetrevino/tally/internal/cli/session"
	"github.com/thenoetrevino/tally/internal/cli/use"
	"github.com/thenoetrevino/tally/internal/launcher"
)

// NewRootCmd builds the root command. Without a subcommand it opens the board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "Tally - A terminal score board",
		Long: `Tally keeps score for a table of players in the terminal. Every row is a
round; each player column holds a score and the row shows its sum.

Run without arguments to open the board, or use the subcommands to work with
saved sessions from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionName, _ := cmd.Flags().GetString("session")
			columns, _ := cmd.Flags().GetInt("columns")
			ephemeral, _ := cmd.Flags().GetBool("ephemeral")
			return launcher.Launch(launcher.Options{
				Session:   sessionName,
				Columns:   columns,
				Ephemeral: ephemeral,
			})
		},
	}

	rootCmd.Flags().StringP("session", "s", "", "Session to open and save to")
	rootCmd.Flags().Int("columns", 0, "Players per row for a new board (default from config)")
	rootCmd.Flags().Bool("ephemeral", false, "Keep everything in memory")

	rootCmd.AddCommand(session.SessionCmd())
	rootCmd.AddCommand(row.RowCmd())
	rootCmd.AddCommand(score.ScoreCmd())
	rootCmd.AddCommand(use.UseCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
