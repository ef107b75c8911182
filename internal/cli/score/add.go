package score

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
)

// AddCmd returns the score add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <row-id> <column> <delta>",
		Short: "Add a signed delta to one score",
		Long: `Add a signed delta to the score of one player. The row sum follows.
Columns are zero-based. Flags must come before the positional arguments so
negative deltas are not read as flags.

Examples:
  tally score add --session cup row-0 2 4
  tally score add --session cup row-0 2 -1
`,
		Args: cobra.ExactArgs(3),
		RunE: handler.SessionCommand(handler.HandlerFunc(runAdd), handler.Mutating),
	}

	setup(cmd)
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, col, err := parseCell(args.Args)
	if err != nil {
		return nil, err
	}
	delta, err := cli.ParseDelta(args.Args[2])
	if err != nil {
		return nil, err
	}
	if _, err := c.App.BoardService.AdjustScore(ctx, id, col, delta); err != nil {
		return nil, err
	}
	return newCellResult(c, id, col)
}
