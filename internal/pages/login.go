// Package pages holds the page objects for the OrangeHRM flows under test.
// Page objects expose domain-level operations only; every element interaction
// goes through the browser.Interactor so wait and timing semantics stay
// centralized.
package pages

import (
	"go.uber.org/zap"

	"hrmcheck/internal/browser"
	"hrmcheck/internal/settings"
)

// loginPath is appended to the environment base URL.
const loginPath = "/auth/login"

// Login page locators, matching the OrangeHRM markup.
var (
	usernameField           = browser.XPath("//input[@placeholder='Username']")
	passwordField           = browser.XPath("//input[@placeholder='Password']")
	loginButton             = browser.XPath("//button[normalize-space()='Login']")
	invalidCredentialsAlert = browser.XPath("//p[@class='oxd-text oxd-text--p oxd-alert-content-text']")
	usernameValidationHint  = browser.XPath("//div[@class='orangehrm-login-slot-wrapper']//div[1]//div[1]//span[1]")
	passwordValidationHint  = browser.XPath("//div[@class='orangehrm-login-form']//div[2]//div[1]//span[1]")
)

// LoginPage drives the OrangeHRM login screen.
type LoginPage struct {
	session *browser.Session
	ui      *browser.Interactor
	log     *zap.Logger
	url     string
}

// NewLoginPage builds a login page bound to the session and environment.
func NewLoginPage(session *browser.Session, doc *settings.Document, log *zap.Logger) *LoginPage {
	return &LoginPage{
		session: session,
		ui:      browser.NewInteractor(session, doc, log),
		log:     log.Named("login_page"),
		url:     doc.Application.BaseURL + loginPath,
	}
}

// Navigate loads the login page.
func (p *LoginPage) Navigate() error {
	p.log.Info("navigating to login page", zap.String("url", p.url))
	return p.session.Navigate(p.url)
}

// EnterUsername types the username.
func (p *LoginPage) EnterUsername(username string) error {
	p.log.Info("entering username")
	return p.ui.EnterText(usernameField, username, false)
}

// EnterPassword types the password; the value is masked in logs.
func (p *LoginPage) EnterPassword(password string) error {
	p.log.Info("entering password")
	return p.ui.EnterText(passwordField, password, true)
}

// Submit clicks the login button.
func (p *LoginPage) Submit() error {
	p.log.Info("clicking login button")
	return p.ui.Click(loginButton)
}

// Login performs the full credential entry and submit flow.
func (p *LoginPage) Login(username, password string) error {
	if err := p.EnterUsername(username); err != nil {
		return err
	}
	if err := p.EnterPassword(password); err != nil {
		return err
	}
	return p.Submit()
}

// IsInvalidCredentialsDisplayed reports whether the invalid-credentials
// alert is shown.
func (p *LoginPage) IsInvalidCredentialsDisplayed() bool {
	return p.ui.IsVisible(invalidCredentialsAlert)
}

// IsUsernameValidationDisplayed reports whether the username field
// validation hint is shown.
func (p *LoginPage) IsUsernameValidationDisplayed() bool {
	return p.ui.IsVisible(usernameValidationHint)
}

// IsPasswordValidationDisplayed reports whether the password field
// validation hint is shown.
func (p *LoginPage) IsPasswordValidationDisplayed() bool {
	return p.ui.IsVisible(passwordValidationHint)
}

// ErrorMessage returns the message the page currently displays for a failed
// login attempt: a field validation hint when present, otherwise the
// invalid-credentials alert text.
func (p *LoginPage) ErrorMessage() (string, error) {
	if p.ui.IsVisible(usernameValidationHint) {
		return p.ui.ReadText(usernameValidationHint)
	}
	if p.ui.IsVisible(passwordValidationHint) {
		return p.ui.ReadText(passwordValidationHint)
	}
	return p.ui.ReadText(invalidCredentialsAlert)
}
