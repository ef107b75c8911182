package score

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
	"github.com/thenoetrevino/tally/internal/types"
)

// SumCmd returns the score sum subcommand
func SumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum <row-id>",
		Short: "Compute the sum of a row",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SessionCommand(handler.HandlerFunc(runSum), handler.ReadOnly),
	}

	setup(cmd)

	return cmd
}

type sumResult struct {
	RowID types.RowID `json:"row_id"`
	Sum   int         `json:"sum"`
}

func (r sumResult) GetID() string { return fmt.Sprint(r.Sum) }

func (r sumResult) String() string {
	return fmt.Sprintf("%s: Σ %d", r.RowID, r.Sum)
}

func runSum(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseRowID(args.Args[0])
	if err != nil {
		return nil, err
	}
	sum, err := c.App.BoardService.ComputeSum(ctx, id)
	if err != nil {
		return nil, err
	}
	return sumResult{RowID: id, Sum: sum}, nil
}
