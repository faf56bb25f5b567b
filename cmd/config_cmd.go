package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/hisab/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Config file:  %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print("  (not created yet, run: hisab config init)")
	}
	fmt.Println()
	fmt.Printf("Data dir:     %s\n", config.DataDir(cfg))
	fmt.Printf("Currency:     %s\n", cfg.General.Currency)
	fmt.Printf("Theme:        %s\n", cfg.Appearance.Theme)

	if config.GetAPIKey(cfg) != "" {
		fmt.Println("Advisor key:  set")
	} else {
		fmt.Println("Advisor key:  not set (set GEMINI_API_KEY or advisor.api_key)")
	}
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config already exists at %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", config.ConfigPath())
	return nil
}
