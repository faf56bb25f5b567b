package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/report"
	"github.com/theirongolddev/hisab/internal/tui/components"
	"github.com/theirongolddev/hisab/internal/tui/theme"
)

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	sym := a.cfg.General.Currency

	if len(a.state.Goals) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("\n  No savings goals yet. Press a to add one.")
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 30
	if barW < 10 {
		barW = 10
	}

	var lines []string
	for i, g := range a.state.Goals {
		title := cli.Truncate(g.Title, 24)
		if i == a.goalCursor {
			lines = append(lines, selStyle.Render("▸ "+title))
		} else {
			lines = append(lines, titleStyle.Render("  "+title))
		}

		meta := fmt.Sprintf("  %s of %s  ·  %s", cli.FormatAmount(sym, g.CurrentAmount),
			cli.FormatAmount(sym, g.TargetAmount), g.Type)
		if !g.Deadline.IsZero() {
			meta += "  ·  by " + cli.FormatDate(g.Deadline)
		}
		lines = append(lines, metaStyle.Render(meta))
		lines = append(lines, "  "+components.TrackerBar("", report.GoalProgress(g), 0, barW))
		lines = append(lines, "")
	}

	return components.ContentCard("Savings Goals  (j/k move, x delete)", strings.Join(lines, "\n"), cw)
}
