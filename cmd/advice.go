package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/advisor"
)

var flagStrategy bool

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Get an AI analyst take on your finances",
	Long: "Fetches a short daily update, or with --strategy a debt-payoff " +
		"plan. Purely advisory: the numbers never depend on it, and API " +
		"failures fall back to a fixed message.",
	RunE: runAdvice,
}

func init() {
	adviceCmd.Flags().BoolVarP(&flagStrategy, "strategy", "s", false, "Ask for a repayment strategy instead of a daily update")
	rootCmd.AddCommand(adviceCmd)
}

func runAdvice(cmd *cobra.Command, _ []string) error {
	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	client := newAdvisor(cfg)
	digest := advisor.NewDigest(b.Snapshot())

	var text string
	if flagStrategy {
		text = client.StrategyPlan(cmd.Context(), digest)
	} else {
		text = client.DailyUpdate(cmd.Context(), digest)
	}

	fmt.Println()
	fmt.Println(text)
	return nil
}
