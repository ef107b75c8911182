package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	"github.com/thenoetrevino/tally/internal/testutil"
)

type idData struct {
	ID string
}

func (d idData) GetID() string { return d.ID }

func TestOutputFormatter_Success(t *testing.T) {
	t.Run("quiet prints the id", func(t *testing.T) {
		f := &OutputFormatter{Quiet: true}
		out := testutil.CaptureOutput(t, func() {
			require.NoError(t, f.Success(idData{ID: "row-3"}))
		})
		assert.Equal(t, "row-3\n", out)
	})

	t.Run("json wraps data", func(t *testing.T) {
		f := &OutputFormatter{JSON: true}
		out := testutil.CaptureOutput(t, func() {
			require.NoError(t, f.Success(map[string]any{"sum": 4}))
		})
		result := testutil.ParseJSON(t, out)
		assert.Equal(t, true, result["success"])
		assert.Equal(t, map[string]any{"sum": float64(4)}, result["data"])
	})

	t.Run("quiet without id falls back to human output", func(t *testing.T) {
		f := &OutputFormatter{Quiet: true}
		out := testutil.CaptureOutput(t, func() {
			require.NoError(t, f.Success("done"))
		})
		assert.Equal(t, "done\n", out)
	})
}

func TestOutputFormatter_FailJSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = f.Fail(scoreboard.ErrCannotRemoveFirst)
	})

	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.ErrorIs(t, err, scoreboard.ErrCannotRemoveFirst)

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
	errData, ok := result["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CANNOT_REMOVE_FIRST", errData["code"])
	assert.Equal(t, "cannot remove the first row", errData["message"])
	assert.NotEmpty(t, errData["suggestion"])
}

func TestOutputFormatter_ErrorHumanWritesNothingToStdout(t *testing.T) {
	f := &OutputFormatter{}
	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Error("ERROR", "boom"))
	})
	assert.Empty(t, out)
}

func TestFormatterFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	AddOutputFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--json"}))

	f := FormatterFromFlags(cmd)
	assert.True(t, f.JSON)
	assert.False(t, f.Quiet)
}
