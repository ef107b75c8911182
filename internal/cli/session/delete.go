package session

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
)

// DeleteCmd returns the session delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved session",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cli.AddSessionFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

type deleteResult struct {
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}

func (r deleteResult) GetID() string { return r.Name }

func (r deleteResult) String() string {
	return fmt.Sprintf("✓ Session '%s' deleted", r.Name)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	name, err := sessionName(cmd, args)
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if err := cliInstance.App.SessionService.Delete(ctx, name); err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(deleteResult{Name: name, Deleted: true})
}
