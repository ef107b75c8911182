package theme

import "github.com/thenoetrevino/tally/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Title          string
	Subtle         string
	Normal         string
	Positive       string
	Negative       string
	Zero           string
	Sum            string
	RowBorder      string
	FirstRowBorder string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Highlight = c.Accent
	Title = c.Title
	Subtle = c.Subtle
	Normal = c.Normal
	Positive = c.Positive
	Negative = c.Negative
	Zero = c.Zero
	Sum = c.Sum
	RowBorder = c.RowBorder
	FirstRowBorder = c.FirstRowBorder
	SelectedBorder = c.SelectedBorder
	SelectedBg = c.SelectedBg
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
	StatusBarBg = c.StatusBarBg
	StatusBarText = c.StatusBarText
}
