package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/book"
	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/model"
	"github.com/theirongolddev/hisab/internal/report"
)

var (
	flagDebtType string
	flagDebtPaid string
)

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Manage debts and loans",
	RunE:  runDebtList,
}

var debtAddCmd = &cobra.Command{
	Use:   "add <title> <total>",
	Short: "Add a debt or loan",
	Args:  cobra.ExactArgs(2),
	RunE:  runDebtAdd,
}

var debtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List debts with payoff progress",
	RunE:  runDebtList,
}

func init() {
	debtAddCmd.Flags().StringVarP(&flagDebtType, "type", "t", string(model.Debt), "Liability type (loan|debt|special)")
	debtAddCmd.Flags().StringVar(&flagDebtPaid, "paid", "0", "Amount already paid")
	debtCmd.AddCommand(debtAddCmd)
	debtCmd.AddCommand(debtListCmd)
	rootCmd.AddCommand(debtCmd)
}

func runDebtAdd(_ *cobra.Command, args []string) error {
	total, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	paid, err := parseAmount(flagDebtPaid)
	if err != nil {
		return err
	}

	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	l, err := b.AddLiability(book.LiabilityInput{
		Title:       args[0],
		TotalAmount: total,
		PaidAmount:  paid,
		Type:        model.LiabilityType(flagDebtType),
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Added debt %q, %s remaining.\n", l.Title, cli.FormatAmount(symbol(cfg), l.Remaining()))
	}
	return nil
}

func runDebtList(_ *cobra.Command, _ []string) error {
	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	state := b.Snapshot()
	if len(state.Liabilities) == 0 {
		fmt.Println("No debts on record.")
		return nil
	}

	sym := symbol(cfg)
	var rows [][]string
	for _, l := range state.Liabilities {
		rows = append(rows, []string{
			cli.Truncate(l.Title, 24),
			string(l.Type),
			cli.FormatAmount(sym, l.PaidAmount),
			cli.FormatAmount(sym, l.TotalAmount),
			cli.RenderProgressBar(report.DebtProgress(l), 16),
			l.ID,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total remaining", "", "", cli.FormatAmount(sym, report.TotalRemainingDebt(state.Liabilities)), "", "",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Debts",
		Headers: []string{"Debt", "Type", "Paid", "Total", "Paid Off", "ID"},
		Rows:    rows,
	}))
	return nil
}
