package session

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
)

// ListCmd returns the session list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all saved sessions",
		Long:  "List all saved sessions, most recently updated first.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	sessions, err := cliInstance.App.SessionService.List(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output in appropriate format
	if formatter.Quiet {
		// Just print names (one per line)
		for _, s := range sessions {
			fmt.Println(s.Name)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"sessions": sessions,
		})
	}

	// Human-readable output
	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	fmt.Printf("Found %d sessions:\n\n", len(sessions))
	for _, s := range sessions {
		fmt.Printf("  %s - %d players, %d rows, updated %s",
			s.Name, s.ColumnsPerRow, s.RowCount, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
		if s.Owner != "" {
			fmt.Printf(" by %s", s.Owner)
		}
		fmt.Println()
	}

	return nil
}
