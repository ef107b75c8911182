package score

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
)

// NameCmd returns the score name subcommand
func NameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name <row-id> <column> <name>",
		Short: "Rename a player in one row",
		Long: `Set the player name of one column in one row. Other rows keep their names.
An empty name falls back to "Player N" in exports.

Examples:
  tally score name --session cup row-0 0 Ann
  tally score name --session cup row-0 0 ""
`,
		Args: cobra.ExactArgs(3),
		RunE: handler.SessionCommand(handler.HandlerFunc(runName), handler.Mutating),
	}

	setup(cmd)

	return cmd
}

func runName(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, col, err := parseCell(args.Args)
	if err != nil {
		return nil, err
	}
	if err := c.App.BoardService.SetColumnName(ctx, id, col, args.Args[2]); err != nil {
		return nil, err
	}
	return newCellResult(c, id, col)
}
