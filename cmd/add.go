package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/book"
	"github.com/theirongolddev/hisab/internal/cli"
	"github.com/theirongolddev/hisab/internal/model"
)

var (
	flagCategory string
	flagNote     string
	flagDate     string
)

var addCmd = &cobra.Command{
	Use:   "add <income|expense> <amount>",
	Short: "Record a transaction",
	Long:  "Record an income or expense. The bank balance moves by the signed amount.",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Category label")
	addCmd.Flags().StringVar(&flagNote, "note", "", "Free-form note")
	addCmd.Flags().StringVar(&flagDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	typ := model.TransactionType(args[0])
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	var date time.Time
	if flagDate != "" {
		date, err = time.Parse("2006-01-02", flagDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagDate)
		}
	}

	b, st, cfg, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	t, err := b.AddTransaction(book.TransactionInput{
		Type:     typ,
		Amount:   amount,
		Category: flagCategory,
		Date:     date,
		Note:     flagNote,
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Recorded %s %s. Balance is now %s.\n",
			t.Type,
			cli.FormatAmount(symbol(cfg), t.Amount),
			cli.FormatAmount(symbol(cfg), b.Snapshot().BankBalance),
		)
	}
	return nil
}
