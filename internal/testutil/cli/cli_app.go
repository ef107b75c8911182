package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/app"
	tallycli "github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance
// This properly injects the app context so commands can access the test database
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	streams, err := ExecuteCLICommandStreams(t, ctx, testApp, cmd, args)
	return streams.Stdout, err
}

// ExecuteCLICommandStreams is ExecuteCLICommandWithContext keeping stderr as well,
// for commands that warn without failing
func ExecuteCLICommandStreams(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (testutil.Streams, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctxWithApp := tallycli.WithApp(ctx, testApp)
	testutil.SetupCobraCommand(cmd, args)

	var executeErr error
	streams := testutil.CaptureStreams(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return streams, executeErr
}
