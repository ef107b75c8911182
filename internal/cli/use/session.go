package use

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
)

// SessionCmd returns the use session subcommand
func SessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session [name]",
		Short: "Set session context for current shell session",
		Long: `Set the current session context using environment variables.
This command outputs shell commands that should be evaluated:

  eval $(tally use session cup)         # Use session "cup"
  eval $(tally use session --clear)     # Clear session context
  tally use session --show              # Show current session

The TALLY_SESSION environment variable will be set in your current shell
session only. The --session flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseSession,
	}

	cmd.Flags().Bool("clear", false, "Clear the current session context")
	cmd.Flags().Bool("show", false, "Show the current session context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	formatter := &cli.OutputFormatter{}

	if showFlag {
		current := os.Getenv(cli.SessionEnv)
		if current == "" {
			fmt.Println("No session context set")
			fmt.Println("Use 'eval $(tally use session <name>)' to set one")
			return nil
		}
		fmt.Printf("Current session: %s\n", current)
		return nil
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(os.Stderr, "Would clear %s\n", cli.SessionEnv)
			return nil
		}
		fmt.Printf("unset %s\n", cli.SessionEnv)
		fmt.Fprintf(os.Stderr, "Cleared session context\n")
		return nil
	}

	if len(args) == 0 {
		return formatter.Fail(fmt.Errorf("%w: session name required\nUsage: eval $(tally use session <name>)", cli.ErrInvalidArgument))
	}
	name := args[0]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	// Validate the session exists
	session, err := cliInstance.App.SessionService.Get(ctx, name)
	if err != nil {
		return formatter.Fail(err)
	}

	if dryRun {
		fmt.Fprintf(os.Stderr, "Would set %s=%s\n", cli.SessionEnv, session.Name)
		return nil
	}

	fmt.Printf("export %s=%q\n", cli.SessionEnv, session.Name)
	fmt.Fprintf(os.Stderr, "Now using session %s\n", session.Name)

	return nil
}
