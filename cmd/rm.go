package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/book"
)

var rmCmd = &cobra.Command{
	Use:   "rm <transaction|goal|liability> <id>",
	Short: "Delete an item by id",
	Long: "Delete a transaction, goal, or liability. Deleting a transaction " +
		"reverses its balance effect.",
	Args: cobra.ExactArgs(2),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	b, st, _, err := openBook()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := b.Delete(book.ItemKind(args[0]), args[1]); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Deleted %s %s.\n", args[0], args[1])
	}
	return nil
}
