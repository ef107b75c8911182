// Package use holds all cli commands related to setting contextual information
// e.g., tally use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings for the current shell",
		Long: `Set and manage contextual information for the current shell session.

The 'use' command sets context that applies to subsequent commands,
eliminating the need to repeatedly pass --session.

Examples:
  eval $(tally use session cup)       # Use session "cup"
  eval $(tally use session --clear)   # Clear session context
  tally use session --show            # Show current session`,
	}

	cmd.AddCommand(SessionCmd())

	return cmd
}
