package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aureus/cardiosim/internal/config"
	"github.com/aureus/cardiosim/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cardiosim",
	Short: "ECG interpretation trainer",
	Long:  "CardioSim: terminal trainer for ECG interval measurement, multiple-choice questions and full diagnoses, with AI feedback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./config.yaml or ~/.config/cardiosim/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CARDIOSIM_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to question bank JSON (default: embedded sample)")

	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies the --db and --bank flags
// on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB.Path = p
	}
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.Bank.Path = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path (flag, config file
// or CARDIOSIM_DB), then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// openStore loads the config and opens the database for the inspection
// commands.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
