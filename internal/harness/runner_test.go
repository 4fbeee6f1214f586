package harness

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	"hrmcheck/internal/secrets"
	"hrmcheck/internal/settings"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func stubRunner(t *testing.T) *Runner {
	t.Helper()
	r := NewRunner(Options{Environment: "dev"}, zap.NewNop())
	r.newHarness = func(ctx context.Context) (*Harness, error) {
		return &Harness{Log: zap.NewNop()}, nil
	}
	return r
}

func TestRunner_Run_FailureDoesNotAbortSiblings(t *testing.T) {
	r := stubRunner(t)

	var order []string
	checks := []Check{
		{Name: "first", Run: func(ctx context.Context, h *Harness) error {
			order = append(order, "first")
			return errors.New("boom")
		}},
		{Name: "second", Run: func(ctx context.Context, h *Harness) error {
			order = append(order, "second")
			return nil
		}},
	}

	results := r.Run(context.Background(), checks)

	if len(order) != 2 {
		t.Fatalf("executed=%v, want both checks", order)
	}
	if results[0].Passed() {
		t.Error("first check should have failed")
	}
	if !results[1].Passed() {
		t.Errorf("second check should have passed: %v", results[1].Err)
	}
}

func TestRunner_Run_HarnessSetupFailureIsPerCheck(t *testing.T) {
	r := stubRunner(t)
	setupErr := errors.New("browser did not start")
	r.newHarness = func(ctx context.Context) (*Harness, error) {
		return nil, setupErr
	}

	ran := false
	results := r.Run(context.Background(), []Check{
		{Name: "never-runs", Run: func(ctx context.Context, h *Harness) error {
			ran = true
			return nil
		}},
	})

	if ran {
		t.Error("check body must not run when harness setup fails")
	}
	if len(results) != 1 || results[0].Passed() {
		t.Fatalf("results=%+v, want one failure", results)
	}
	if !errors.Is(results[0].Err, setupErr) {
		t.Errorf("Err=%v, want wrapped setup error", results[0].Err)
	}
}

func TestRunner_Preflight_MissingCredentials(t *testing.T) {
	t.Setenv(secrets.UsernameVar, "")
	t.Setenv(secrets.PasswordVar, "")

	r := NewRunner(Options{Environment: "dev"}, zap.NewNop())

	err := r.Preflight()
	var missing *secrets.MissingCredentialError
	if !errors.As(err, &missing) {
		t.Fatalf("Preflight error=%v, want MissingCredentialError", err)
	}
}

func TestRunner_Preflight_UnknownEnvironment(t *testing.T) {
	t.Setenv(secrets.UsernameVar, "Admin")
	t.Setenv(secrets.PasswordVar, "admin123")

	r := NewRunner(Options{Environment: "qa"}, zap.NewNop())

	err := r.Preflight()
	var unknown *settings.UnknownEnvironmentError
	if !errors.As(err, &unknown) {
		t.Fatalf("Preflight error=%v, want UnknownEnvironmentError", err)
	}
}

func TestRunner_Preflight_OK(t *testing.T) {
	t.Setenv(secrets.UsernameVar, "Admin")
	t.Setenv(secrets.PasswordVar, "admin123")

	r := NewRunner(Options{Environment: "dev"}, zap.NewNop())
	if err := r.Preflight(); err != nil {
		t.Fatalf("Preflight: %v", err)
	}
}
