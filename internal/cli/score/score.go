// Package score holds all cli commands that change or read single scores
//
// e.g., tally score ...
package score

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	"github.com/thenoetrevino/tally/internal/types"
)

// ScoreCmd returns the score parent command
func ScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Change player scores and names",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(NameCmd())
	cmd.AddCommand(SumCmd())

	return cmd
}

func setup(cmd *cobra.Command) *cobra.Command {
	cli.AddSessionFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

// parseCell parses the "<row-id> <column>" pair most score commands start with
func parseCell(args []string) (types.RowID, int, error) {
	id, err := cli.ParseRowID(args[0])
	if err != nil {
		return "", 0, err
	}
	col, err := cli.ParseColumn(args[1])
	if err != nil {
		return "", 0, err
	}
	return id, col, nil
}

// cellResult describes one column of a row after a change
type cellResult struct {
	RowID  types.RowID `json:"row_id"`
	Column int         `json:"column"`
	Name   string      `json:"name"`
	Score  int         `json:"score"`
	Sum    int         `json:"sum"`
}

func (r cellResult) GetID() string { return r.RowID.String() }

func (r cellResult) String() string {
	return fmt.Sprintf("✓ %s %s: %d (Σ %d)", r.RowID, scoreboard.DisplayName(r.Column, r.Name), r.Score, r.Sum)
}

func newCellResult(c *cli.CLI, id types.RowID, column int) (cellResult, error) {
	row, err := c.App.BoardService.Row(id)
	if err != nil {
		return cellResult{}, err
	}
	col := row.Columns[column]
	return cellResult{RowID: id, Column: column, Name: col.Name, Score: col.Score, Sum: row.Sum}, nil
}
