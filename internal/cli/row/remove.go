package row

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
	"github.com/thenoetrevino/tally/internal/types"
)

// RemoveCmd returns the row remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <row-id>",
		Short: "Remove a row",
		Long: `Remove a row from the session. The first row of a board cannot be removed.

Examples:
  tally row remove --session cup row-3
  tally row remove --session cup 3
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SessionCommand(handler.HandlerFunc(runRemove), handler.Mutating),
	}

	setup(cmd)

	return cmd
}

type removeResult struct {
	RowID     types.RowID `json:"row_id"`
	Remaining int         `json:"remaining"`
}

func (r removeResult) GetID() string { return r.RowID.String() }

func (r removeResult) String() string {
	return fmt.Sprintf("✓ Removed %s (%d rows left)", r.RowID, r.Remaining)
}

func runRemove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseRowID(args.Args[0])
	if err != nil {
		return nil, err
	}
	if err := c.App.BoardService.RemoveRow(ctx, id); err != nil {
		return nil, err
	}
	return removeResult{RowID: id, Remaining: c.App.BoardService.Board().RowCount()}, nil
}
