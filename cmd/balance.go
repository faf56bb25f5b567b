package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/cli"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [set <amount>]",
	Short: "Show or manually set the bank balance",
	Long: "With no arguments, prints the current balance. \"balance set\" " +
		"overwrites it directly as a manual correction, bypassing the ledger.",
	Args: cobra.MaximumNArgs(2),
	RunE: runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(_ *cobra.Command, args []string) error {
	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		fmt.Println(cli.FormatAmount(symbol(cfg), b.Snapshot().BankBalance))
		return nil
	}

	if args[0] != "set" || len(args) != 2 {
		return fmt.Errorf("usage: hisab balance set <amount>")
	}

	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	if err := b.SetBankBalance(amount); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Balance set to %s.\n", cli.FormatAmount(symbol(cfg), amount))
	}
	return nil
}
