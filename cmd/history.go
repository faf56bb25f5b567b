package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/model"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent transactions, newest first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Max transactions to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	state := b.Snapshot()
	if len(state.Transactions) == 0 {
		fmt.Println("No transactions yet. Record one with: hisab add expense <amount>")
		return nil
	}

	txs := state.Transactions
	if flagLimit > 0 && len(txs) > flagLimit {
		txs = txs[:flagLimit]
	}

	sym := symbol(cfg)
	var rows [][]string
	for _, t := range txs {
		rows = append(rows, []string{
			cli.FormatDate(t.Date),
			cli.FormatSigned(sym, t.Amount, t.Type == model.Income),
			cli.Truncate(t.Category, 18),
			cli.Truncate(t.Note, 28),
			t.ID,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Transactions",
		Headers: []string{"Date", "Amount", "Category", "Note", "ID"},
		Rows:    rows,
	}))
	return nil
}
