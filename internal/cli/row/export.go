package row

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/cli/handler"
	"github.com/thenoetrevino/tally/internal/clipboard"
	boardservice "github.com/thenoetrevino/tally/internal/services/board"
	"github.com/thenoetrevino/tally/internal/types"
)

// ExportCmd returns the row export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <row-id>",
		Short: "Print a row in export form, optionally copying it",
		Long: `Print a row as "<name>: <score>, ..." with unnamed players shown as
"Player N". With --copy the text also goes to the clipboard, using the system
clipboard when available and an OSC 52 terminal sequence otherwise.

Examples:
  tally row export --session cup row-0
  tally row export --session cup row-0 --copy
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SessionCommand(handler.HandlerFunc(runExport), handler.ReadOnly),
	}

	setup(cmd)
	cmd.Flags().Bool("copy", false, "Copy the text to the clipboard")

	return cmd
}

type exportResult struct {
	RowID  types.RowID      `json:"row_id"`
	Text   string           `json:"text"`
	Copied bool             `json:"copied"`
	Method clipboard.Method `json:"method,omitempty"`
}

// GetID returns the export text so quiet mode prints only that
func (r exportResult) GetID() string { return r.Text }

func (r exportResult) String() string {
	if !r.Copied {
		return r.Text
	}
	return fmt.Sprintf("%s\n✓ Copied %s (%s)", r.Text, r.RowID, r.Method)
}

func runExport(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := cli.ParseRowID(args.Args[0])
	if err != nil {
		return nil, err
	}

	if !args.GetBool("copy") {
		text, err := c.App.BoardService.FormatRowForExport(ctx, id)
		if err != nil {
			return nil, err
		}
		return exportResult{RowID: id, Text: text}, nil
	}

	res, err := c.App.BoardService.Export(ctx, id)
	switch {
	case errors.Is(err, boardservice.ErrCopyFailed):
		// The text is still printed so it can be copied by hand
		fmt.Fprintf(os.Stderr, "⚠ Clipboard unavailable: %v\n", err)
		return exportResult{RowID: id, Text: res.Text}, nil
	case err != nil:
		return nil, err
	}
	return exportResult{RowID: id, Text: res.Text, Copied: true, Method: res.Method}, nil
}
