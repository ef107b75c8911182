package scoreboard

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// DisplayName returns the column's name, or "Player <index+1>" when it is empty
func DisplayName(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("Player %d", index+1)
	}
	return name
}

// FormatColumns renders columns as "<name1>: <score1>, <name2>: <score2>, ..."
func FormatColumns(columns []models.Column) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = fmt.Sprintf("%s: %d", DisplayName(i, c.Name), c.Score)
	}
	return strings.Join(parts, ", ")
}

// FormatRowForExport produces the clipboard payload for a row
func (b *Board) FormatRowForExport(id types.RowID) (string, error) {
	row, err := b.row(id)
	if err != nil {
		return "", err
	}
	return FormatColumns(row.Columns), nil
}
