// Package harness wires a browser session, the selected environment's
// settings, and the credential store together for one check, and guarantees
// the session is released afterwards. Configuration problems surface before
// any browser work starts.
package harness

import (
	"context"

	"go.uber.org/zap"

	"hrmcheck/internal/browser"
	"hrmcheck/internal/secrets"
	"hrmcheck/internal/settings"
)

// Options selects what a run tests and how.
type Options struct {
	Environment string
	Headless    bool

	// SecretsFile is an optional local .env file for credentials.
	SecretsFile string
}

// Harness is the per-check fixture. Settings and Secrets are shared,
// read-only resolutions for the whole run; Session is exclusively owned by
// one check and released via Close.
type Harness struct {
	Env      settings.Environment
	Settings *settings.Document
	Secrets  *secrets.Bundle
	Session  *browser.Session
	Log      *zap.Logger
}

// New resolves configuration first (fail fast, fatal for the run) and only
// then starts a browser session.
func New(ctx context.Context, opts Options, loader *settings.Loader, store *secrets.Store, log *zap.Logger) (*Harness, error) {
	doc, err := loader.Load(opts.Environment)
	if err != nil {
		return nil, err
	}
	bundle, err := store.Get()
	if err != nil {
		return nil, err
	}

	cfg := browser.DefaultConfig()
	cfg.Headless = opts.Headless
	session, err := browser.NewSession(ctx, cfg, log.Named("browser"))
	if err != nil {
		return nil, err
	}

	return &Harness{
		Env:      settings.Environment(opts.Environment),
		Settings: doc,
		Secrets:  bundle,
		Session:  session,
		Log:      log,
	}, nil
}

// Close releases the browser session.
func (h *Harness) Close() error {
	if h.Session == nil {
		return nil
	}
	return h.Session.Close()
}
