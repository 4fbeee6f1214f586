package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hrmcheck/internal/settings"
)

var envsCmd = &cobra.Command{
	Use:   "envs",
	Short: "List known environments and their settings",
	RunE:  listEnvironments,
}

func listEnvironments(cmd *cobra.Command, args []string) error {
	loader := settings.NewLoader()
	out := cmd.OutOrStdout()

	for _, env := range settings.Environments() {
		doc, err := loader.Load(string(env))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", env)
		fmt.Fprintf(out, "  base url:              %s\n", doc.Application.BaseURL)
		fmt.Fprintf(out, "  explicit wait:         %s\n", doc.WebDriver.ExplicitWait())
		fmt.Fprintf(out, "  performance threshold: %s\n", doc.Performance.Threshold())
	}
	return nil
}
