package cmd

import (
	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive dashboard",
	Long:  "Full-screen dashboard with tabs for history, goals, debts, and strategy.",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	return tui.Run(b, newAdvisor(cfg), cfg)
}
