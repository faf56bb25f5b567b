package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/report"
	"github.com/theirongolddev/hisab/internal/tui/components"
	"github.com/theirongolddev/hisab/internal/tui/theme"
)

// trendMonths is how far back the spending sparkline reaches.
const trendMonths = 6

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	sym := a.cfg.General.Currency
	now := time.Now()
	flow := report.Monthly(a.state, now)
	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Hint string }{
		{"Balance", cli.FormatAmount(sym, a.state.BankBalance), ""},
		{"Income", cli.FormatSigned(sym, flow.Income, true), now.Format("January")},
		{"Expense", cli.FormatSigned(sym, flow.Expense, false), now.Format("January")},
		{"Debt", cli.FormatAmount(sym, report.TotalRemainingDebt(a.state.Liabilities)), "outstanding"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Analyst update
	advice := a.advice
	if a.adviceLoading {
		advice = "Asking the analyst..."
	}
	b.WriteString(components.ContentCard("Analyst Update", wrapText(advice, components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	// Row 3: Priority debt trackers + monthly plan
	halves := components.LayoutRow(cw, 2)

	var debtLines []string
	special := report.SpecialDebts(a.state.Liabilities)
	labelW := 0
	for _, l := range special {
		if len(l.Title) > labelW {
			labelW = len(l.Title)
		}
	}
	barW := components.CardInnerWidth(halves[0]) - labelW - 8
	if barW < 8 {
		barW = 8
	}
	for _, l := range special {
		debtLines = append(debtLines, components.TrackerBar(l.Title, report.DebtProgress(l), labelW, barW))
	}
	if len(debtLines) == 0 {
		debtLines = append(debtLines, lipgloss.NewStyle().Foreground(t.TextDim).Render("No priority debts"))
	}
	debtCard := components.ContentCard("Priority Debts", strings.Join(debtLines, "\n"), halves[0])

	planBody := fmt.Sprintf("Installment   %s\nFather        %s\nSent so far   %s",
		cli.FormatAmount(sym, a.state.MonthlyInstallment),
		cli.FormatAmount(sym, a.state.MonthlyFatherSupport),
		cli.FormatAmount(sym, report.FatherTransfers(a.state, now)),
	)
	planCard := components.ContentCard("Monthly Plan", planBody, halves[1])

	b.WriteString(components.CardRow([]string{debtCard, planCard}))
	b.WriteString("\n")

	// Row 4: Spending trend + goals preview
	var trend []float64
	for i := trendMonths - 1; i >= 0; i-- {
		m := report.Monthly(a.state, now.AddDate(0, -i, 0))
		f, _ := m.Expense.Float64()
		trend = append(trend, f)
	}
	trendCard := components.ContentCard(
		fmt.Sprintf("Spending (%dmo)", trendMonths),
		components.Sparkline(trend, t.Orange),
		halves[0],
	)

	var goalLines []string
	for i, g := range a.state.Goals {
		if i == 3 {
			goalLines = append(goalLines, lipgloss.NewStyle().Foreground(t.TextDim).
				Render(fmt.Sprintf("...and %d more", len(a.state.Goals)-3)))
			break
		}
		goalLines = append(goalLines, components.TrackerBar(
			cli.Truncate(g.Title, 12),
			report.GoalProgress(g),
			12,
			components.CardInnerWidth(halves[1])-20,
		))
	}
	if len(goalLines) == 0 {
		goalLines = append(goalLines, lipgloss.NewStyle().Foreground(t.TextDim).Render("No goals yet — press a"))
	}
	goalCard := components.ContentCard("Savings Goals", strings.Join(goalLines, "\n"), halves[1])

	b.WriteString(components.CardRow([]string{trendCard, goalCard}))

	return b.String()
}

// wrapText greedily wraps words to the given width.
func wrapText(s string, width int) string {
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(s) {
		wl := len([]rune(word))
		if lineLen > 0 && lineLen+1+wl > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += wl
	}
	return b.String()
}
