package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/hisab/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. left holds keybinding
// hints, right the current balance.
func RenderStatusBar(width int, left, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
