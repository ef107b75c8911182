package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tally/internal/tui/theme"
)

// appearance is the icon and colors a severity renders with
type appearance struct {
	icon string
	fg   string
	bg   string
}

// appearance reads the theme on every call, so a theme applied at startup is picked up
func (s Severity) appearance() appearance {
	switch s {
	case Warning:
		return appearance{icon: "⚠", fg: theme.WarningFg, bg: theme.WarningBg}
	case Error:
		return appearance{icon: "✕", fg: theme.ErrorFg, bg: theme.ErrorBg}
	default:
		return appearance{icon: "✓", fg: theme.InfoFg, bg: theme.InfoBg}
	}
}

func (a appearance) style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(a.fg)).
		Background(lipgloss.Color(a.bg)).
		Padding(0, 1)
}
