package score

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	"github.com/thenoetrevino/tally/internal/testutil"
	clitest "github.com/thenoetrevino/tally/internal/testutil/cli"
)

func setupSession(t *testing.T) *app.App {
	t.Helper()
	t.Setenv(cli.SessionEnv, "")

	db, application, _ := clitest.SetupCLITest(t)
	testutil.CreateTestSession(t, db, "cup", 4, func(b *scoreboard.Board) {
		_, _ = b.AdjustScore(b.FirstRowID(), 1, 3)
	})
	return application
}

func firstRow(t *testing.T, a *app.App) models.Row {
	t.Helper()
	b, err := a.SessionService.Load(context.Background(), "cup")
	require.NoError(t, err)
	return b.Rows()[0]
}

func TestScoreAdd(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantScore int
		wantSum   int
	}{
		{"positive", []string{"--session", "cup", "row-0", "1", "4"}, 7, 7},
		{"explicit plus", []string{"--session", "cup", "0", "1", "+2"}, 5, 5},
		{"negative delta", []string{"--session", "cup", "row-0", "1", "-5"}, -2, -2},
		{"zero", []string{"--session", "cup", "row-0", "1", "0"}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setupSession(t)

			output, err := clitest.ExecuteCLICommand(t, a, AddCmd(), tt.args)
			require.NoError(t, err)
			assert.Contains(t, output, "Player 2")

			row := firstRow(t, a)
			assert.Equal(t, tt.wantScore, row.Columns[1].Score)
			assert.Equal(t, tt.wantSum, row.Sum)
		})
	}
}

func TestScoreAddJSON(t *testing.T) {
	a := setupSession(t)

	output, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{"--json", "--session", "cup", "row-0", "3", "-1"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "row-0", data["row_id"])
	assert.Equal(t, float64(3), data["column"])
	assert.Equal(t, float64(-1), data["score"])
	assert.Equal(t, float64(2), data["sum"])
}

func TestScoreAddErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantExit int
	}{
		{"column out of range", []string{"--session", "cup", "row-0", "4", "1"}, cli.ExitNotFound},
		{"unknown row", []string{"--session", "cup", "row-7", "0", "1"}, cli.ExitNotFound},
		{"bad delta", []string{"--session", "cup", "row-0", "0", "lots"}, cli.ExitValidation},
		{"bad column", []string{"--session", "cup", "row-0", "first", "1"}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setupSession(t)

			_, err := clitest.ExecuteCLICommand(t, a, AddCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, cli.ExitCode(err))
			assert.Equal(t, 3, firstRow(t, a).Sum, "a failed command leaves the session unchanged")
		})
	}
}

func TestScoreName(t *testing.T) {
	a := setupSession(t)

	output, err := clitest.ExecuteCLICommand(t, a, NameCmd(), []string{"--session", "cup", "row-0", "1", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "✓ row-0 Bob: 3 (Σ 3)\n", output)
	assert.Equal(t, "Bob", firstRow(t, a).Columns[1].Name)

	// An empty name clears it
	_, err = clitest.ExecuteCLICommand(t, a, NameCmd(), []string{"--session", "cup", "row-0", "1", ""})
	require.NoError(t, err)
	assert.Empty(t, firstRow(t, a).Columns[1].Name)
}

func TestScoreSum(t *testing.T) {
	a := setupSession(t)

	output, err := clitest.ExecuteCLICommand(t, a, SumCmd(), []string{"--session", "cup", "row-0", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "3\n", output)

	output, err = clitest.ExecuteCLICommand(t, a, SumCmd(), []string{"--session", "cup", "row-0"})
	require.NoError(t, err)
	assert.Equal(t, "row-0: Σ 3\n", output)
}
