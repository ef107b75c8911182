package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// Streams holds what a command wrote to stdout and stderr
type Streams struct {
	Stdout string
	Stderr string
}

// redirect points *target at a pipe until the returned func is called, which
// restores it and returns everything written in between
func redirect(t *testing.T, target **os.File) func() string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err, "create pipe")

	orig := *target
	*target = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	return func() string {
		_ = w.Close()
		*target = orig
		return <-done
	}
}

// CaptureStreams runs fn with stdout and stderr captured separately
func CaptureStreams(t *testing.T, fn func()) Streams {
	t.Helper()

	stopOut := redirect(t, &os.Stdout)
	stopErr := redirect(t, &os.Stderr)
	fn()
	return Streams{Stderr: stopErr(), Stdout: stopOut()}
}

// CaptureOutput runs fn and returns what it wrote to stdout
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()
	stop := redirect(t, &os.Stdout)
	fn()
	return stop()
}

// ParseJSON decodes a JSON object printed by a --json command
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output: %s", output)
	return result
}

// SetupCobraCommand sets args and silences cobra's own usage and error printing so
// tests see only what the command prints
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
