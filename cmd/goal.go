package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/book"
	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/model"
	"github.com/theirongolddev/hisab/internal/report"
)

var (
	flagGoalType     string
	flagGoalCurrent  string
	flagGoalDeadline string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
	RunE:  runGoalList,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <title> <target>",
	Short: "Add a savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List savings goals with progress",
	RunE:  runGoalList,
}

func init() {
	goalAddCmd.Flags().StringVarP(&flagGoalType, "type", "t", string(model.ShortTerm), "Goal type (short-term|long-term)")
	goalAddCmd.Flags().StringVar(&flagGoalCurrent, "current", "0", "Amount already saved")
	goalAddCmd.Flags().StringVar(&flagGoalDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(_ *cobra.Command, args []string) error {
	target, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	current, err := parseAmount(flagGoalCurrent)
	if err != nil {
		return err
	}

	var deadline time.Time
	if flagGoalDeadline != "" {
		deadline, err = time.Parse("2006-01-02", flagGoalDeadline)
		if err != nil {
			return fmt.Errorf("invalid deadline %q, want YYYY-MM-DD", flagGoalDeadline)
		}
	}

	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	g, err := b.AddGoal(book.GoalInput{
		Title:         args[0],
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Type:          model.GoalType(flagGoalType),
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Added goal %q with target %s.\n", g.Title, cli.FormatAmount(symbol(cfg), g.TargetAmount))
	}
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	state := b.Snapshot()
	if len(state.Goals) == 0 {
		fmt.Println("No savings goals yet. Add one with: hisab goal add <title> <target>")
		return nil
	}

	sym := symbol(cfg)
	var rows [][]string
	for _, g := range state.Goals {
		rows = append(rows, []string{
			cli.Truncate(g.Title, 24),
			string(g.Type),
			cli.FormatAmount(sym, g.CurrentAmount),
			cli.FormatAmount(sym, g.TargetAmount),
			cli.RenderProgressBar(report.GoalProgress(g), 16),
			g.ID,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Savings Goals",
		Headers: []string{"Goal", "Type", "Saved", "Target", "Progress", "ID"},
		Rows:    rows,
	}))
	return nil
}
