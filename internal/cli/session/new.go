package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	sessionservice "github.com/thenoetrevino/tally/internal/services/session"
)

// NewCmd returns the session new subcommand
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a session holding an empty board",
		Long: `Create a session whose board holds a single row of zero scores.

Examples:
  tally session new cup
  tally session new cup --columns 4

  # Replace an existing session
  tally session new cup --force
`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}

	cmd.Flags().Int("columns", 0, "Players per row (default from config)")
	cmd.Flags().Bool("force", false, "Overwrite an existing session")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	name := args[0]

	columns, _ := cmd.Flags().GetInt("columns")
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if !cmd.Flags().Changed("columns") {
		columns = cliInstance.Config.Board.ColumnsPerRow
	}

	if !force {
		_, err := cliInstance.App.SessionService.Get(ctx, name)
		switch {
		case err == nil:
			return formatter.Fail(fmt.Errorf("%w: %s", cli.ErrSessionExists, name))
		case !errors.Is(err, sessionservice.ErrSessionNotFound):
			return formatter.Fail(err)
		}
	}

	b, err := cliInstance.App.NewBoard(columns)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := cliInstance.App.BoardService.Replace(ctx, b); err != nil {
		return formatter.Fail(err)
	}
	session, err := cliInstance.App.SessionService.Save(ctx, name, b)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Println(session.Name)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"session": map[string]any{
				"id":              session.ID,
				"name":            session.Name,
				"owner":           session.Owner,
				"columns_per_row": columns,
				"created_at":      session.CreatedAt,
			},
		})
	}

	fmt.Printf("✓ Session '%s' created with %d players\n", session.Name, columns)
	return nil
}
