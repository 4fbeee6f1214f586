// Package settings loads the per-environment configuration documents bundled
// with the binary. A document is validated eagerly when loaded and cached for
// the rest of the run; consumers always see the same instance.
package settings

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"
	"time"
)

//go:embed environments/*.json
var environmentFS embed.FS

// Environment names a settings document.
type Environment string

const (
	Dev     Environment = "dev"
	Staging Environment = "staging"
	Prod    Environment = "prod"
)

// Environments lists every supported environment, in display order.
func Environments() []Environment {
	return []Environment{Dev, Staging, Prod}
}

// UnknownEnvironmentError reports an environment name outside the supported set.
type UnknownEnvironmentError struct {
	Name string
}

func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf("unknown environment %q (valid: dev, staging, prod)", e.Name)
}

// SettingsNotFoundError reports a missing settings document.
type SettingsNotFoundError struct {
	Env Environment
}

func (e *SettingsNotFoundError) Error() string {
	return fmt.Sprintf("settings document for environment %q not found", e.Env)
}

// SettingsMalformedError reports a document that fails schema validation.
type SettingsMalformedError struct {
	Env    Environment
	Reason string
	Err    error
}

func (e *SettingsMalformedError) Error() string {
	return fmt.Sprintf("settings document for environment %q is malformed: %s", e.Env, e.Reason)
}

func (e *SettingsMalformedError) Unwrap() error { return e.Err }

// ParseEnvironment validates a user-supplied environment name.
func ParseEnvironment(name string) (Environment, error) {
	switch Environment(name) {
	case Dev, Staging, Prod:
		return Environment(name), nil
	default:
		return "", &UnknownEnvironmentError{Name: name}
	}
}

// Document is the validated, read-only settings for one environment.
type Document struct {
	WebDriver   WebDriverSettings   `json:"webdriver"`
	Application ApplicationSettings `json:"application"`
	Performance PerformanceSettings `json:"performance"`
}

// WebDriverSettings configures element waits.
type WebDriverSettings struct {
	ExplicitWaitSeconds int `json:"explicit_wait"`
}

// ExplicitWait returns the element wait timeout.
func (w WebDriverSettings) ExplicitWait() time.Duration {
	return time.Duration(w.ExplicitWaitSeconds) * time.Second
}

// ApplicationSettings configures the application under test.
type ApplicationSettings struct {
	BaseURL string `json:"base_url"`
}

// PerformanceSettings configures interaction timing observability.
type PerformanceSettings struct {
	ThresholdSeconds int `json:"performance_threshold"`
}

// Threshold returns the duration above which an interaction logs a warning.
func (p PerformanceSettings) Threshold() time.Duration {
	return time.Duration(p.ThresholdSeconds) * time.Second
}

// rawDocument mirrors Document with pointer fields so absent keys can be
// distinguished from zero values during validation.
type rawDocument struct {
	WebDriver *struct {
		ExplicitWaitSeconds *int `json:"explicit_wait"`
	} `json:"webdriver"`
	Application *struct {
		BaseURL *string `json:"base_url"`
	} `json:"application"`
	Performance *struct {
		ThresholdSeconds *int `json:"performance_threshold"`
	} `json:"performance"`
}

// Loader resolves settings documents, one decode per environment per run.
type Loader struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[Environment]*Document
}

// NewLoader returns a loader backed by the embedded documents.
func NewLoader() *Loader {
	return newLoaderFS(environmentFS)
}

func newLoaderFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, cache: make(map[Environment]*Document)}
}

// Load returns the document for name. The name is validated, the document is
// schema-checked eagerly, and repeated calls for the same environment return
// the identical instance.
func (l *Loader) Load(name string) (*Document, error) {
	env, err := ParseEnvironment(name)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if doc, ok := l.cache[env]; ok {
		return doc, nil
	}

	doc, err := l.read(env)
	if err != nil {
		return nil, err
	}
	l.cache[env] = doc
	return doc, nil
}

func (l *Loader) read(env Environment) (*Document, error) {
	data, err := fs.ReadFile(l.fsys, fmt.Sprintf("environments/%s.json", env))
	if err != nil {
		return nil, &SettingsNotFoundError{Env: env}
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &SettingsMalformedError{Env: env, Reason: "cannot decode document", Err: err}
	}
	if err := validate(env, &raw); err != nil {
		return nil, err
	}

	return &Document{
		WebDriver:   WebDriverSettings{ExplicitWaitSeconds: *raw.WebDriver.ExplicitWaitSeconds},
		Application: ApplicationSettings{BaseURL: *raw.Application.BaseURL},
		Performance: PerformanceSettings{ThresholdSeconds: *raw.Performance.ThresholdSeconds},
	}, nil
}

// validate enforces the schema up front so a bad document fails the run
// before any browser work, not when a field is first used.
func validate(env Environment, raw *rawDocument) error {
	switch {
	case raw.WebDriver == nil:
		return &SettingsMalformedError{Env: env, Reason: "missing section webdriver"}
	case raw.WebDriver.ExplicitWaitSeconds == nil:
		return &SettingsMalformedError{Env: env, Reason: "missing key webdriver.explicit_wait"}
	case *raw.WebDriver.ExplicitWaitSeconds <= 0:
		return &SettingsMalformedError{Env: env, Reason: "webdriver.explicit_wait must be positive"}
	case raw.Application == nil:
		return &SettingsMalformedError{Env: env, Reason: "missing section application"}
	case raw.Application.BaseURL == nil || *raw.Application.BaseURL == "":
		return &SettingsMalformedError{Env: env, Reason: "missing key application.base_url"}
	case raw.Performance == nil:
		return &SettingsMalformedError{Env: env, Reason: "missing section performance"}
	case raw.Performance.ThresholdSeconds == nil:
		return &SettingsMalformedError{Env: env, Reason: "missing key performance.performance_threshold"}
	case *raw.Performance.ThresholdSeconds <= 0:
		return &SettingsMalformedError{Env: env, Reason: "performance.performance_threshold must be positive"}
	}
	return nil
}
