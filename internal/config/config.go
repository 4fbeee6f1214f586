// Package config holds the runner-level configuration: which environment to
// test, how to run the browser, and where supporting files live. Values come
// from defaults, then an optional .hrmcheck.yaml, then environment variables;
// CLI flags override all of them.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"hrmcheck/internal/settings"
)

// DefaultPath is the runner config file looked up in the working directory.
const DefaultPath = ".hrmcheck.yaml"

// Environment variable overrides.
const (
	EnvVar         = "HRMCHECK_ENV"
	HeadlessVar    = "HRMCHECK_HEADLESS"
	HistoryVar     = "HRMCHECK_HISTORY"
	SecretsFileVar = "HRMCHECK_SECRETS_FILE"
)

// Config is the runner configuration.
type Config struct {
	// Environment selects the settings document (dev, staging, prod).
	Environment string `yaml:"environment"`

	// Headless runs the browser without a window.
	Headless bool `yaml:"headless"`

	// HistoryPath is the SQLite run-history database. Empty disables history.
	HistoryPath string `yaml:"history_path"`

	// SecretsFile is an optional local .env file with credentials.
	SecretsFile string `yaml:"secrets_file"`
}

// DefaultConfig returns the defaults used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Environment: string(settings.Dev),
		Headless:    false,
		HistoryPath: ".hrmcheck/history.db",
		SecretsFile: ".env",
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if env := os.Getenv(EnvVar); env != "" {
		c.Environment = env
	}
	if headless := os.Getenv(HeadlessVar); headless != "" {
		if v, err := strconv.ParseBool(headless); err == nil {
			c.Headless = v
		}
	}
	if path := os.Getenv(HistoryVar); path != "" {
		c.HistoryPath = path
	}
	if path := os.Getenv(SecretsFileVar); path != "" {
		c.SecretsFile = path
	}
}

// Validate rejects bad values before any test work starts.
func (c *Config) Validate() error {
	if _, err := settings.ParseEnvironment(c.Environment); err != nil {
		return err
	}
	return nil
}
