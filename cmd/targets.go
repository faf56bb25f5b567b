package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/cli"
)

var (
	flagInstallment string
	flagSupport     string
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show or update monthly targets",
	Long: "Monthly targets are the planned installment payment and the " +
		"amount sent home to father each month.",
	RunE: runTargets,
}

func init() {
	targetsCmd.Flags().StringVar(&flagInstallment, "installment", "", "Monthly installment amount")
	targetsCmd.Flags().StringVar(&flagSupport, "support", "", "Monthly father support amount")
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, _ []string) error {
	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	sym := symbol(cfg)
	state := b.Snapshot()

	if flagInstallment == "" && flagSupport == "" {
		fmt.Printf("Monthly installment:    %s\n", cli.FormatAmount(sym, state.MonthlyInstallment))
		fmt.Printf("Father support target:  %s\n", cli.FormatAmount(sym, state.MonthlyFatherSupport))
		return nil
	}

	installment := state.MonthlyInstallment
	support := state.MonthlyFatherSupport
	if flagInstallment != "" {
		if installment, err = parseAmount(flagInstallment); err != nil {
			return err
		}
	}
	if flagSupport != "" {
		if support, err = parseAmount(flagSupport); err != nil {
			return err
		}
	}

	if err := b.UpdateTargets(installment, support); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Targets updated: installment %s, father support %s.\n",
			cli.FormatAmount(sym, installment), cli.FormatAmount(sym, support))
	}
	return nil
}
