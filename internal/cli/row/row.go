// Package row holds all cli commands that change the rows of a session
//
// e.g., tally row ...
package row

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	"github.com/thenoetrevino/tally/internal/types"
)

// RowCmd returns the row parent command
func RowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Manage the rows of a session",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(DecrementAllCmd())

	return cmd
}

// setup registers the flags every row command shares
func setup(cmd *cobra.Command) *cobra.Command {
	cli.AddSessionFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

// rowResult is the output of commands that leave a row behind
type rowResult struct {
	Verb    string          `json:"-"`
	RowID   types.RowID     `json:"row_id"`
	Sum     int             `json:"sum"`
	Columns []models.Column `json:"columns"`
}

func newRowResult(verb string, r models.Row) rowResult {
	return rowResult{Verb: verb, RowID: r.ID, Sum: r.Sum, Columns: r.Columns}
}

func (r rowResult) GetID() string { return r.RowID.String() }

func (r rowResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ %s %s (Σ %d)", r.Verb, r.RowID, r.Sum)
	for i, c := range r.Columns {
		fmt.Fprintf(&b, "\n  %-16s %d", scoreboard.DisplayName(i, c.Name), c.Score)
	}
	return b.String()
}
