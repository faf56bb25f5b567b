package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/cli"
)

var payCmd = &cobra.Command{
	Use:   "pay <debt> <amount>",
	Short: "Record a debt repayment",
	Long: "Pay toward a debt, addressed by id or title (e.g. \"Mama\"). " +
		"Adds a matching expense and reduces the balance.",
	Args: cobra.ExactArgs(2),
	RunE: runPay,
}

func init() {
	rootCmd.AddCommand(payCmd)
}

func runPay(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	l, ok := b.FindLiability(args[0])
	if !ok {
		return fmt.Errorf("no debt matches %q", args[0])
	}

	if _, err := b.RecordDebtPayment(l.ID, amount); err != nil {
		return err
	}

	if !flagQuiet {
		updated, _ := b.FindLiability(l.ID)
		fmt.Printf("Paid %s toward %s. Remaining: %s.\n",
			cli.FormatAmount(symbol(cfg), amount),
			l.Title,
			cli.FormatAmount(symbol(cfg), updated.Remaining()),
		)
	}
	return nil
}
