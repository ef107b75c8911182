package row

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
)

// DecrementAllCmd returns the row decrement-all subcommand
func DecrementAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrement-all <row-id>",
		Short: "Decrease every score in a row by one",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SessionCommand(handler.HandlerFunc(runDecrementAll), handler.Mutating),
	}

	setup(cmd)

	return cmd
}

func runDecrementAll(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseRowID(args.Args[0])
	if err != nil {
		return nil, err
	}
	if _, err := c.App.BoardService.DecreaseAllByOne(ctx, id); err != nil {
		return nil, err
	}
	row, err := c.App.BoardService.Row(id)
	if err != nil {
		return nil, err
	}
	return newRowResult("Decremented", row), nil
}
