package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/model"
	"github.com/theirongolddev/hisab/internal/tui/components"
	"github.com/theirongolddev/hisab/internal/tui/theme"
)

func (a App) renderStrategyTab(cw int) string {
	t := theme.Active
	sym := a.cfg.General.Currency
	var b strings.Builder

	text := a.strategy
	if a.strategyLoading {
		text = "Working out a plan..."
	} else if text == "" {
		text = "Press r to ask the analyst for a repayment plan."
	}
	b.WriteString(components.ContentCard("Analyst Plan", wrapText(text, components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	// Snowball order: smallest remaining debt first. A quick reference
	// even when the analyst is offline.
	remaining := make([]model.Liability, 0, len(a.state.Liabilities))
	for _, l := range a.state.Liabilities {
		if l.Remaining().IsPositive() {
			remaining = append(remaining, l)
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		return remaining[i].Remaining().LessThan(remaining[j].Remaining())
	})

	if len(remaining) > 0 {
		numStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

		var lines []string
		for i, l := range remaining {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				numStyle.Render(fmt.Sprintf("%d.", i+1)),
				nameStyle.Render(cli.Truncate(l.Title, 24)),
				amtStyle.Render(cli.FormatAmount(sym, l.Remaining())),
			))
		}
		b.WriteString(components.ContentCard("Snowball Order (smallest first)", strings.Join(lines, "\n"), cw))
	}

	return b.String()
}
