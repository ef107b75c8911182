package row

import (
	"context"
	"errors"
	"strings"
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

// seedCup stores a 3-player session "cup" with rows row-0 [4 0 -1] and row-1 [2 2 2]
// where row-0 names its first player Ann
func seedCup(t *testing.T) (*app.App, *clitest.FakeClipboard) {
	t.Helper()
	t.Setenv(cli.SessionEnv, "")

	db, application, clip := clitest.SetupCLITest(t)
	testutil.CreateTestSession(t, db, "cup", 3, func(b *scoreboard.Board) {
		first := b.FirstRowID()
		require.NoError(t, b.SetColumnName(first, 0, "Ann"))
		_, _ = b.AdjustScore(first, 0, 4)
		_, _ = b.AdjustScore(first, 2, -1)

		second := b.CreateRow(scoreboard.CreateRowRequest{Mode: scoreboard.CreateFresh})
		for i := range 3 {
			_, _ = b.AdjustScore(second, i, 2)
		}
	})
	return application, clip
}

func loadRows(t *testing.T, a *app.App) []models.Row {
	t.Helper()
	b, err := a.SessionService.Load(context.Background(), "cup")
	require.NoError(t, err)
	return b.Rows()
}

func TestAddRow(t *testing.T) {
	t.Run("fresh row", func(t *testing.T) {
		a, _ := seedCup(t)

		output, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{"--session", "cup", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "row-2\n", output)

		rows := loadRows(t, a)
		require.Len(t, rows, 3)
		assert.Equal(t, []int{0, 0, 0}, rows[2].Scores())
		assert.Empty(t, rows[2].Columns[0].Name)
	})

	t.Run("duplicate with name override", func(t *testing.T) {
		a, _ := seedCup(t)

		output, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{
			"--session", "cup", "--duplicate", "--name", "1=Bob", "--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]any)
		assert.Equal(t, "row-2", data["row_id"])
		assert.Equal(t, float64(6), data["sum"])

		rows := loadRows(t, a)
		require.Len(t, rows, 3)
		assert.Equal(t, []int{2, 2, 2}, rows[2].Scores())
		assert.Equal(t, "Bob", rows[2].Columns[1].Name)
	})

	t.Run("human output lists players", func(t *testing.T) {
		a, _ := seedCup(t)

		output, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{"--session", "cup", "--name", "0=Zed"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(output, "✓ Added row-2 (Σ 0)\n"))
		assert.Contains(t, output, "Zed")
		assert.Contains(t, output, "Player 2")
	})

	t.Run("bad override", func(t *testing.T) {
		a, _ := seedCup(t)

		_, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{"--session", "cup", "--name", "Bob"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Len(t, loadRows(t, a), 2, "nothing is saved on failure")
	})

	t.Run("session from env", func(t *testing.T) {
		a, _ := seedCup(t)
		t.Setenv(cli.SessionEnv, "cup")

		_, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Len(t, loadRows(t, a), 3)
	})

	t.Run("no session", func(t *testing.T) {
		a, _ := seedCup(t)

		_, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{})
		assert.ErrorIs(t, err, cli.ErrNoSession)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("unknown session", func(t *testing.T) {
		a, _ := seedCup(t)

		_, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{"--session", "league"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestRemoveRow(t *testing.T) {
	t.Run("removes a later row", func(t *testing.T) {
		a, _ := seedCup(t)

		output, err := clitest.ExecuteCLICommand(t, a, RemoveCmd(), []string{"--session", "cup", "1"})
		require.NoError(t, err)
		assert.Equal(t, "✓ Removed row-1 (1 rows left)\n", output)

		rows := loadRows(t, a)
		require.Len(t, rows, 1)
		assert.Equal(t, "row-0", rows[0].ID.String())
	})

	t.Run("ids are not reused after removal", func(t *testing.T) {
		a, _ := seedCup(t)

		_, err := clitest.ExecuteCLICommand(t, a, RemoveCmd(), []string{"--session", "cup", "row-1"})
		require.NoError(t, err)

		output, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{"--session", "cup", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "row-2\n", output)
	})

	t.Run("first row is permanent", func(t *testing.T) {
		a, _ := seedCup(t)

		output, err := clitest.ExecuteCLICommand(t, a, RemoveCmd(), []string{"--session", "cup", "row-0", "--json"})
		assert.ErrorIs(t, err, scoreboard.ErrCannotRemoveFirst)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

		result := testutil.ParseJSON(t, output)
		errData := result["error"].(map[string]any)
		assert.Equal(t, "CANNOT_REMOVE_FIRST", errData["code"])
		assert.Len(t, loadRows(t, a), 2)
	})

	t.Run("unknown row", func(t *testing.T) {
		a, _ := seedCup(t)

		_, err := clitest.ExecuteCLICommand(t, a, RemoveCmd(), []string{"--session", "cup", "row-9"})
		assert.ErrorIs(t, err, scoreboard.ErrRowNotFound)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestDecrementAll(t *testing.T) {
	a, _ := seedCup(t)

	output, err := clitest.ExecuteCLICommand(t, a, DecrementAllCmd(), []string{"--session", "cup", "row-0", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "row-0\n", output)

	rows := loadRows(t, a)
	assert.Equal(t, []int{3, -1, -2}, rows[0].Scores())
	assert.Equal(t, 0, rows[0].Sum)
}

func TestExportRow(t *testing.T) {
	t.Run("prints without copying", func(t *testing.T) {
		a, clip := seedCup(t)

		output, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{"--session", "cup", "row-0"})
		require.NoError(t, err)
		assert.Equal(t, "Ann: 4, Player 2: 0, Player 3: -1\n", output)
		assert.Empty(t, clip.Copied)
	})

	t.Run("copies", func(t *testing.T) {
		a, clip := seedCup(t)

		output, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{"--session", "cup", "row-1", "--copy"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Player 1: 2, Player 2: 2, Player 3: 2"}, clip.Copied)
		assert.Contains(t, output, "✓ Copied row-1 (system)")
	})

	t.Run("clipboard failure still prints the text", func(t *testing.T) {
		a, clip := seedCup(t)
		clip.Err = errors.New("no display")

		streams, err := clitest.ExecuteCLICommandStreams(t, context.Background(), a, ExportCmd(), []string{"--session", "cup", "row-1", "--copy", "--json"})
		require.NoError(t, err)
		assert.Contains(t, streams.Stderr, "⚠ Clipboard unavailable")

		data := testutil.ParseJSON(t, streams.Stdout)["data"].(map[string]any)
		assert.Equal(t, "Player 1: 2, Player 2: 2, Player 3: 2", data["text"])
		assert.Equal(t, false, data["copied"])
	})

	t.Run("quiet prints only the text", func(t *testing.T) {
		a, _ := seedCup(t)

		output, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{"--session", "cup", "row-0", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "Ann: 4, Player 2: 0, Player 3: -1\n", output)
	})
}
