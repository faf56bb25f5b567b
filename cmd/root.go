package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/advisor"
	"github.com/theirongolddev/hisab/internal/book"
	"github.com/theirongolddev/hisab/internal/config"
	"github.com/theirongolddev/hisab/internal/store"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "hisab",
	Short: "Personal finance tracker",
	Long:  "Track your balance, debts, savings goals, and monthly flows from the terminal.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the data directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// openBook is the shared setup path used by all commands: load config,
// open the database, and hydrate the book (seeding on first run).
// Callers must Close the returned store.
func openBook() (*book.Book, *store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, nil, cfg, err
	}

	b, err := book.Open(st)
	if err != nil {
		_ = st.Close()
		return nil, nil, cfg, err
	}
	return b, st, cfg, nil
}

// newAdvisor builds the advisory client from config. Nil when no API
// key is set; callers then render the fixed fallbacks.
func newAdvisor(cfg config.Config) *advisor.Client {
	return advisor.NewClient(config.GetAPIKey(cfg), cfg.Advisor.Model, cfg.Advisor.BaseURL)
}

func symbol(cfg config.Config) string {
	return cfg.General.Currency
}

// parseAmount parses a money argument. Rejects anything decimal can't
// read so typos fail before touching the book.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
