package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hrmcheck/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs from the local history database",
	RunE:  showHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of runs to show")
}

func showHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.HistoryPath == "" {
		return fmt.Errorf("history is disabled (empty history_path)")
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no recorded runs")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(out, "%s  %-8s  %d passed, %d failed  (%s)  %s\n",
			run.StartedAt.Local().Format(time.DateTime),
			run.Environment,
			run.Passed, run.Failed,
			run.Duration.Round(time.Millisecond),
			run.ID)
	}
	return nil
}
