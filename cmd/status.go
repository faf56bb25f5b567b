package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/report"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Current balance, monthly flows, and debt at a glance",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	state := b.Snapshot()
	now := time.Now()
	flow := report.Monthly(state, now)
	sym := symbol(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HISAB  %s", now.Format("January 2006"))))
	fmt.Println()

	rows := [][]string{
		{"Bank Balance", cli.FormatAmount(sym, state.BankBalance)},
		{"---"},
		{"Income (month)", cli.FormatSigned(sym, flow.Income, true)},
		{"Expense (month)", cli.FormatSigned(sym, flow.Expense, false)},
		{"Net (month)", cli.FormatAmount(sym, flow.Net())},
		{"Sent to Father", cli.FormatAmount(sym, report.FatherTransfers(state, now))},
		{"---"},
		{"Outstanding Debt", cli.FormatAmount(sym, report.TotalRemainingDebt(state.Liabilities))},
		{"Savings Goals", fmt.Sprintf("%d", len(state.Goals))},
		{"---"},
		{"Monthly Installment", cli.FormatAmount(sym, state.MonthlyInstallment)},
		{"Father Support Target", cli.FormatAmount(sym, state.MonthlyFatherSupport)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if special := report.SpecialDebts(state.Liabilities); len(special) > 0 {
		fmt.Println()
		var debtRows [][]string
		for _, l := range special {
			debtRows = append(debtRows, []string{
				l.Title,
				cli.FormatAmount(sym, l.Remaining()),
				cli.RenderProgressBar(report.DebtProgress(l), 20),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Priority Debts",
			Headers: []string{"Debt", "Remaining", "Paid Off"},
			Rows:    debtRows,
		}))
	}

	return nil
}
