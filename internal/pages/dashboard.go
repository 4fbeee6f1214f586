package pages

import (
	"go.uber.org/zap"

	"hrmcheck/internal/browser"
	"hrmcheck/internal/settings"
)

var dashboardTitle = browser.XPath("//h6[normalize-space()='Dashboard']")

// DashboardPage verifies the post-login dashboard state. Its only observable
// state is whether the dashboard title is displayed.
type DashboardPage struct {
	ui  *browser.Interactor
	log *zap.Logger
}

// NewDashboardPage builds a dashboard page bound to the session and environment.
func NewDashboardPage(session *browser.Session, doc *settings.Document, log *zap.Logger) *DashboardPage {
	return &DashboardPage{
		ui:  browser.NewInteractor(session, doc, log),
		log: log.Named("dashboard_page"),
	}
}

// IsDisplayed reports whether the dashboard title is visible.
func (p *DashboardPage) IsDisplayed() bool {
	p.log.Info("checking dashboard title visibility")
	return p.ui.IsVisible(dashboardTitle)
}
