package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	envName    string
	headless   bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hrmcheck",
	Short: "hrmcheck - browser checks for the OrangeHRM login flow",
	Long: `hrmcheck drives a real browser through the OrangeHRM login flow and
reports which scenarios pass against the selected environment.

Credentials come from the ORANGEHRM_USERNAME and ORANGEHRM_PASSWORD
environment variables (or a local .env file); per-environment settings
such as base URL and wait budgets are bundled with the binary.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: .hrmcheck.yaml)")
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "Target environment: dev, staging, or prod")
	rootCmd.PersistentFlags().BoolVar(&headless, "headless", false, "Run the browser without a visible window")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(envsCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
