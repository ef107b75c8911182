// Package session holds all cli commands related to saved sessions
//
// e.g., tally session ...
package session

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
)

// SessionCmd returns the session parent command
func SessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage saved sessions",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(NewCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// sessionName takes the name from the first argument, then from --session or
// $TALLY_SESSION
func sessionName(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return cli.GetSession(cmd)
}
