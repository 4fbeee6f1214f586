// Package checks defines the login and dashboard scenarios the runner
// executes against an environment.
package checks

import (
	"context"
	"fmt"

	"hrmcheck/internal/harness"
	"hrmcheck/internal/pages"
)

// Suite returns every login scenario, in execution order.
func Suite() []harness.Check {
	suite := []harness.Check{
		{Name: "login_valid_credentials", Run: loginValidCredentials},
	}

	invalid := []struct {
		name     string
		username string
		password string
	}{
		{"login_invalid_username_and_password", "invalid", "invalid123"},
		{"login_invalid_password", "Admin", "invalid123"},
		{"login_invalid_username", "invalid", "admin123"},
	}
	for _, combo := range invalid {
		username, password := combo.username, combo.password
		suite = append(suite, harness.Check{
			Name: combo.name,
			Run: func(ctx context.Context, h *harness.Harness) error {
				return loginInvalidCredentials(h, username, password)
			},
		})
	}

	return append(suite,
		harness.Check{Name: "login_empty_credentials", Run: loginEmptyCredentials},
		harness.Check{Name: "login_empty_username", Run: loginEmptyUsername},
		harness.Check{Name: "login_empty_password", Run: loginEmptyPassword},
	)
}

func loginValidCredentials(ctx context.Context, h *harness.Harness) error {
	login := pages.NewLoginPage(h.Session, h.Settings, h.Log)
	if err := login.Navigate(); err != nil {
		return err
	}
	if err := login.Login(h.Secrets.Username.Reveal(), h.Secrets.Password.Reveal()); err != nil {
		return err
	}

	dashboard := pages.NewDashboardPage(h.Session, h.Settings, h.Log)
	if !dashboard.IsDisplayed() {
		return fmt.Errorf("dashboard title is not displayed after login")
	}
	return nil
}

func loginInvalidCredentials(h *harness.Harness, username, password string) error {
	login := pages.NewLoginPage(h.Session, h.Settings, h.Log)
	if err := login.Navigate(); err != nil {
		return err
	}
	if err := login.Login(username, password); err != nil {
		return err
	}
	if !login.IsInvalidCredentialsDisplayed() {
		return fmt.Errorf("invalid credentials message is not displayed")
	}
	return nil
}

func loginEmptyCredentials(ctx context.Context, h *harness.Harness) error {
	login := pages.NewLoginPage(h.Session, h.Settings, h.Log)
	if err := login.Navigate(); err != nil {
		return err
	}
	if err := login.Login("", ""); err != nil {
		return err
	}
	if !login.IsUsernameValidationDisplayed() {
		return fmt.Errorf("username validation hint is not displayed")
	}
	if !login.IsPasswordValidationDisplayed() {
		return fmt.Errorf("password validation hint is not displayed")
	}
	return nil
}

func loginEmptyUsername(ctx context.Context, h *harness.Harness) error {
	login := pages.NewLoginPage(h.Session, h.Settings, h.Log)
	if err := login.Navigate(); err != nil {
		return err
	}
	if err := login.Login("", "admin123"); err != nil {
		return err
	}
	if !login.IsUsernameValidationDisplayed() {
		return fmt.Errorf("username validation hint is not displayed")
	}

	msg, err := login.ErrorMessage()
	if err != nil {
		return err
	}
	if msg != "Username is required" {
		return fmt.Errorf("validation message %q, want %q", msg, "Username is required")
	}
	return nil
}

func loginEmptyPassword(ctx context.Context, h *harness.Harness) error {
	login := pages.NewLoginPage(h.Session, h.Settings, h.Log)
	if err := login.Navigate(); err != nil {
		return err
	}
	if err := login.Login("Admin", ""); err != nil {
		return err
	}
	if !login.IsPasswordValidationDisplayed() {
		return fmt.Errorf("password validation hint is not displayed")
	}

	msg, err := login.ErrorMessage()
	if err != nil {
		return err
	}
	if msg != "Password is required" {
		return fmt.Errorf("validation message %q, want %q", msg, "Password is required")
	}
	return nil
}
