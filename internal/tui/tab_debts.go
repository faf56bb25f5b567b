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

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active
	sym := a.cfg.General.Currency

	if len(a.state.Liabilities) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("\n  Debt free! Press a if that changes.")
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	totalStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 30
	if barW < 10 {
		barW = 10
	}

	var lines []string
	for i, l := range a.state.Liabilities {
		title := fmt.Sprintf("%s  (%s)", cli.Truncate(l.Title, 24), l.Type)
		if i == a.debtCursor {
			lines = append(lines, selStyle.Render("▸ "+title))
		} else {
			lines = append(lines, titleStyle.Render("  "+title))
		}

		lines = append(lines, metaStyle.Render(fmt.Sprintf("  %s paid of %s  ·  %s remaining",
			cli.FormatAmount(sym, l.PaidAmount),
			cli.FormatAmount(sym, l.TotalAmount),
			cli.FormatAmount(sym, l.Remaining()),
		)))
		lines = append(lines, "  "+components.TrackerBar("", report.DebtProgress(l), 0, barW))
		lines = append(lines, "")
	}

	lines = append(lines, totalStyle.Render(fmt.Sprintf("  Total outstanding: %s",
		cli.FormatAmount(sym, report.TotalRemainingDebt(a.state.Liabilities)))))

	return components.ContentCard("Debts  (j/k move, p pay, x delete)", strings.Join(lines, "\n"), cw)
}
