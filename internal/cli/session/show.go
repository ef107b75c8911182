package session

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
)

// ShowCmd returns the session show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show row sums, column totals and row count of a session",
		Long: `Show the debug views of a session: every row's id, sum and scores, the
total of each column across all rows, and the number of rows. Nothing is
changed.

Examples:
  tally session show cup
  tally session show --session cup --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	cli.AddSessionFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.LoadSession(ctx, name); err != nil {
		return formatter.Fail(err)
	}
	report := NewReport(name, cliInstance.App.BoardService.Snapshot())

	if formatter.Quiet {
		for _, r := range report.RowSums {
			fmt.Println(r.RowID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"report":  report,
		})
	}

	_, err = report.WriteTo(os.Stdout)
	return err
}
