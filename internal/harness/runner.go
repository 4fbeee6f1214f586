package harness

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hrmcheck/internal/secrets"
	"hrmcheck/internal/settings"
)

// Check is one named scenario. Run receives a fresh harness with its own
// browser session.
type Check struct {
	Name string
	Run  func(ctx context.Context, h *Harness) error
}

// Result is the outcome of one check.
type Result struct {
	Name     string
	Duration time.Duration
	Err      error
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Runner executes checks sequentially. Settings and secrets are resolved
// once and shared; each check gets a fresh browser session that is released
// on every exit path, including failure.
type Runner struct {
	opts   Options
	loader *settings.Loader
	store  *secrets.Store
	log    *zap.Logger

	// newHarness is swapped in tests.
	newHarness func(ctx context.Context) (*Harness, error)
}

// NewRunner builds a runner for the selected environment.
func NewRunner(opts Options, log *zap.Logger) *Runner {
	r := &Runner{
		opts:   opts,
		loader: settings.NewLoader(),
		store:  secrets.NewStore(opts.SecretsFile),
		log:    log,
	}
	r.newHarness = func(ctx context.Context) (*Harness, error) {
		return New(ctx, r.opts, r.loader, r.store, r.log)
	}
	return r
}

// Preflight resolves settings and secrets without touching the browser.
// A run must fail here, not mid-test, when configuration is incomplete.
func (r *Runner) Preflight() error {
	if _, err := r.loader.Load(r.opts.Environment); err != nil {
		return err
	}
	if _, err := r.store.Get(); err != nil {
		return err
	}
	return nil
}

// Run executes every check and returns a result per check. A failing check
// never aborts its siblings.
func (r *Runner) Run(ctx context.Context, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		results = append(results, r.runOne(ctx, check))
	}
	return results
}

func (r *Runner) runOne(ctx context.Context, check Check) Result {
	log := r.log.With(zap.String("check", check.Name))
	log.Info("check started", zap.String("environment", r.opts.Environment))

	start := time.Now()
	h, err := r.newHarness(ctx)
	if err != nil {
		log.Error("harness setup failed", zap.Error(err))
		return Result{Name: check.Name, Duration: time.Since(start), Err: fmt.Errorf("harness setup: %w", err)}
	}
	defer func() {
		if cerr := h.Close(); cerr != nil {
			log.Warn("browser session close failed", zap.Error(cerr))
		}
	}()

	err = check.Run(ctx, h)
	result := Result{Name: check.Name, Duration: time.Since(start), Err: err}
	if err != nil {
		log.Error("check failed", zap.Duration("duration", result.Duration), zap.Error(err))
	} else {
		log.Info("check passed", zap.Duration("duration", result.Duration))
	}
	return result
}
