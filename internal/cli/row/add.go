package row

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
	"github.com/thenoetrevino/tally/internal/scoreboard"
)

// AddCmd returns the row add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a row",
		Long: `Append a row to the session. A fresh row starts with empty names and zero
scores; --duplicate copies the names and scores of the last row instead.

Examples:
  tally row add --session cup
  tally row add --session cup --duplicate
  tally row add --session cup --duplicate --name 0=Ann --name 2=Bob

  # Quiet mode for bash capture
  ROW_ID=$(tally row add --session cup --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.SessionCommand(handler.HandlerFunc(runAdd), handler.Mutating),
	}

	setup(cmd)
	cmd.Flags().Bool("duplicate", false, "Copy names and scores from the last row")
	cmd.Flags().StringArray("name", nil, "Name override as column=name (repeatable)")

	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	overrides, err := cli.ParseNameOverrides(args.GetStringArray("name"))
	if err != nil {
		return nil, err
	}

	req := scoreboard.CreateRowRequest{Mode: scoreboard.CreateFresh, NameOverrides: overrides}
	if args.GetBool("duplicate") {
		req.Mode = scoreboard.CreateDuplicateLast
	}

	id := c.App.BoardService.CreateRow(ctx, req)
	row, err := c.App.BoardService.Row(id)
	if err != nil {
		return nil, err
	}
	return newRowResult("Added", row), nil
}
