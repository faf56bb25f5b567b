package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/hisab/internal/tui/theme"
)

// colorForProgress picks a bar color from a 0-100 completion value:
// cool for early progress, accent shades as it nears done.
func colorForProgress(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 80:
		return string(t.AccentBright)
	case pct >= 50:
		return string(t.Accent)
	default:
		return string(t.Cyan)
	}
}

// TrackerBar renders a labeled progress bar for a 0-100 percent value,
// used for goal and debt payoff trackers.
func TrackerBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	bar := progress.New(
		progress.WithSolidFill(colorForProgress(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorForProgress(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(pct/100) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}
