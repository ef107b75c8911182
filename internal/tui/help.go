package tui

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by style and width to avoid expensive re-creation
var rendererCache sync.Map // map[string]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given style and width
func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	cacheKey := fmt.Sprintf("%s/%d", style, width)
	if cached, ok := rendererCache.Load(cacheKey); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(cacheKey, renderer)
	return renderer, nil
}

// helpMarkdown documents the active key bindings as a markdown table
func (k keyMap) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# tally\n\nKeep score for a table of players. Every row is a round.\n\n")

	section := func(title string, bindings ...key.Binding) {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n| --- | --- |\n", title)
		for _, kb := range bindings {
			h := kb.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	section("Move", k.PrevColumn, k.NextColumn, k.PrevRow, k.NextRow)

	scores := make([]key.Binding, 0, len(k.QuickDeltas)+2)
	for _, qd := range k.QuickDeltas {
		scores = append(scores, qd.binding)
	}
	scores = append(scores, k.DecreaseAll, k.RefreshSum)
	section("Scores", scores...)

	section("Rows", k.AddRow, k.DuplicateRow, k.RemoveRow, k.EditName, k.CopyRow)
	section("Editing a name", k.Confirm, k.Cancel, k.DuplicateFromEdit, k.CopyFromEdit)
	section("Other", k.SaveSession, k.ShowHelp, k.Quit)

	return b.String()
}

// renderHelp renders the key reference for the given width. Light themes get the
// light markdown style.
func (m Model) renderHelp(width int) string {
	md := m.keys.helpMarkdown()

	style := "dark"
	if m.Config.ColorScheme.Preset == "lotus" {
		style = "light"
	}

	r, err := getRenderer(style, width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
