package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/model"
	"github.com/theirongolddev/hisab/internal/tui/components"
	"github.com/theirongolddev/hisab/internal/tui/theme"
)

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active
	sym := a.cfg.General.Currency
	txs := a.state.Transactions

	if len(txs) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("\n  No transactions yet. Press a to record one.")
	}

	// Visible window keeps the cursor on screen inside the card.
	visible := contentH - 5
	if visible < 3 {
		visible = 3
	}
	offset := 0
	if a.histCursor >= visible {
		offset = a.histCursor - visible + 1
	}
	end := offset + visible
	if end > len(txs) {
		end = len(txs)
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(cw)

	var lines []string
	for i := offset; i < end; i++ {
		tx := txs[i]
		amount := cli.FormatSigned(sym, tx.Amount, tx.Type == model.Income)
		line := fmt.Sprintf("%s  %12s  %-16s %s",
			cli.FormatDate(tx.Date),
			amount,
			cli.Truncate(tx.Category, 16),
			cli.Truncate(tx.Note, innerW-48),
		)
		if i == a.histCursor {
			lines = append(lines, selStyle.Render("▸ "+line))
		} else {
			lines = append(lines, rowStyle.Render("  "+line))
		}
	}

	if len(txs) > visible {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  %d-%d of %d", offset+1, end, len(txs))))
	}

	return components.ContentCard("Transactions  (j/k move, x delete)", strings.Join(lines, "\n"), cw)
}
