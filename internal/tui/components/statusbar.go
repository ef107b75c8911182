package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width   int
	Session string // empty for an unsaved board
	Dirty   bool   // changed since the last save or load
	Rows    int
	Columns int
	Notice  string // already rendered inline notification
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "tally · <session>* · 3 rows × 8 players"
// Right side: notification, or "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	session := props.Session
	if session == "" {
		session = "unsaved"
	}
	if props.Dirty {
		session += "*"
	}
	leftText := fmt.Sprintf(" tally · %s · %d rows × %d players ", session, props.Rows, props.Columns)

	leftRendered := StatusBarStyle.Render(leftText)
	rightRendered := props.Notice
	if rightRendered == "" {
		rightRendered = SubtleStyle.Render("press ? for help ")
	}

	// Calculate space between left and right text
	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
