package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tally/internal/tui/state"
)

// Render renders a one-line notification for the status bar. Errors are bold and
// carry a title so they stand out from routine confirmations.
func Render(severity Severity, message string) string {
	a := severity.appearance()
	st := a.style()
	text := a.icon + " " + message
	if severity == Error {
		st = st.Bold(true)
		text = a.icon + " " + severity.String() + ": " + message
	}
	return st.Render(text)
}

// RenderInlineFromState renders the notification held in UI state, clipped to width
// cells. A width of zero or less means unlimited.
func RenderInlineFromState(n state.Notification, width int) string {
	out := Render(FromLevel(n.Level), n.Message)
	if width > 0 && lipgloss.Width(out) > width {
		out = lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	return out
}
