package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hrmcheck/internal/checks"
	"hrmcheck/internal/config"
	"hrmcheck/internal/harness"
	"hrmcheck/internal/history"
	"hrmcheck/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the login scenarios against the selected environment",
	Long: `Resolves settings and credentials up front, then drives every login
scenario through a fresh browser session. Prints a summary and records
the run in the local history database.

Example:
  hrmcheck run --env staging --headless`,
	RunE: runChecks,
}

func runChecks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	runner := harness.NewRunner(harness.Options{
		Environment: cfg.Environment,
		Headless:    cfg.Headless,
		SecretsFile: cfg.SecretsFile,
	}, logger)

	// Configuration problems are fatal for the whole run; surface them
	// before any browser starts.
	if err := runner.Preflight(); err != nil {
		return err
	}

	suite := checks.Suite()
	logger.Info("starting run",
		zap.String("environment", cfg.Environment),
		zap.Bool("headless", cfg.Headless),
		zap.Int("checks", len(suite)))

	started := time.Now()
	results := runner.Run(ctx, suite)
	elapsed := time.Since(started)

	fmt.Fprint(cmd.OutOrStdout(), report.Summary(cfg.Environment, results))

	if cfg.HistoryPath != "" {
		if err := recordRun(cfg, started, elapsed, results); err != nil {
			logger.Warn("could not record run history", zap.Error(err))
		}
	}

	if report.Failed(results) {
		return fmt.Errorf("run failed against %s", cfg.Environment)
	}
	return nil
}

func recordRun(cfg *config.Config, started time.Time, elapsed time.Duration, results []harness.Result) error {
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records := make([]history.Result, 0, len(results))
	for _, r := range results {
		rec := history.Result{Name: r.Name, Status: history.StatusPassed, Duration: r.Duration}
		if r.Err != nil {
			rec.Status = history.StatusFailed
			rec.Error = r.Err.Error()
		}
		records = append(records, rec)
	}

	_, err = store.RecordRun(cfg.Environment, started, elapsed, records)
	return err
}

// loadConfig resolves the effective configuration: file, environment
// variables, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("env") {
		cfg.Environment = envName
	}
	if cmd.Flags().Changed("headless") {
		cfg.Headless = headless
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
