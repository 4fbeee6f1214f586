package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hrmcheck/internal/settings"
)

func TestEnvsCmd(t *testing.T) {
	logger = zap.NewNop()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := listEnvironments(cmd, nil); err != nil {
		t.Fatalf("listEnvironments: %v", err)
	}

	for _, want := range []string{"dev", "staging", "prod", "base url", "explicit wait"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func newFlaggedCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&envName, "env", "", "")
	cmd.Flags().BoolVar(&headless, "headless", false, "")
	return cmd
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { configPath = "" }()

	cmd := newFlaggedCommand()
	if err := cmd.Flags().Parse([]string{"--env", "staging", "--headless"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("Environment=%q, want staging", cfg.Environment)
	}
	if !cfg.Headless {
		t.Error("Headless=false, want true")
	}
}

func TestLoadConfig_RejectsUnknownEnvironment(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { configPath = "" }()

	cmd := newFlaggedCommand()
	if err := cmd.Flags().Parse([]string{"--env", "qa"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	_, err := loadConfig(cmd)
	var unknown *settings.UnknownEnvironmentError
	if !errors.As(err, &unknown) {
		t.Fatalf("err=%v, want UnknownEnvironmentError", err)
	}
}
