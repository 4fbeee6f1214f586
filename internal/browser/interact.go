package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"hrmcheck/internal/settings"
)

// secretMask replaces secret text in log output, fixed length regardless of
// the value.
const secretMask = "********"

// Strategy selects how a locator value is interpreted.
type Strategy string

const (
	ByCSS   Strategy = "css"
	ByXPath Strategy = "xpath"
)

// Locator identifies a UI element as a (strategy, value) pair.
type Locator struct {
	Strategy Strategy
	Value    string
}

// CSS builds a CSS selector locator.
func CSS(value string) Locator {
	return Locator{Strategy: ByCSS, Value: value}
}

// XPath builds an XPath locator.
func XPath(value string) Locator {
	return Locator{Strategy: ByXPath, Value: value}
}

func (l Locator) String() string {
	return string(l.Strategy) + "=" + l.Value
}

// Interactor performs element lookups and actions with the environment's
// explicit-wait timeout and performance-threshold instrumentation. Page
// objects never touch the page directly; they compose these primitives.
type Interactor struct {
	page      *rod.Page
	log       *zap.Logger
	wait      time.Duration
	threshold time.Duration
}

// NewInteractor binds the session page to the environment settings.
func NewInteractor(session *Session, doc *settings.Document, log *zap.Logger) *Interactor {
	return &Interactor{
		page:      session.Page(),
		log:       log.Named("interact"),
		wait:      doc.WebDriver.ExplicitWait(),
		threshold: doc.Performance.Threshold(),
	}
}

// find resolves the locator, polling until the element exists or timeout.
func (i *Interactor) find(loc Locator, timeout time.Duration) (*rod.Element, error) {
	page := i.page.Timeout(timeout)
	if loc.Strategy == ByXPath {
		return page.ElementX(loc.Value)
	}
	return page.Element(loc.Value)
}

// WaitVisible polls until the element is present and displayed, or the
// explicit-wait timeout elapses.
func (i *Interactor) WaitVisible(loc Locator) (*rod.Element, error) {
	start := time.Now()
	el, err := i.find(loc, i.wait)
	if err == nil {
		err = el.WaitVisible()
	}
	elapsed := time.Since(start)

	if err != nil {
		i.log.Warn("element did not become visible",
			zap.String("locator", loc.String()),
			zap.Duration("elapsed", elapsed),
			zap.Duration("timeout", i.wait))
		return nil, &ElementNotVisibleError{Locator: loc, Timeout: i.wait, Elapsed: elapsed, Err: err}
	}

	i.observe("wait_visible", loc, elapsed)
	return el.CancelTimeout(), nil
}

// WaitClickable polls until the element is visible and enabled, or the
// explicit-wait timeout elapses.
func (i *Interactor) WaitClickable(loc Locator) (*rod.Element, error) {
	start := time.Now()
	el, err := i.find(loc, i.wait)
	if err == nil {
		err = el.WaitVisible()
	}
	if err == nil {
		err = el.WaitEnabled()
	}
	elapsed := time.Since(start)

	if err != nil {
		i.log.Warn("element did not become clickable",
			zap.String("locator", loc.String()),
			zap.Duration("elapsed", elapsed),
			zap.Duration("timeout", i.wait))
		return nil, &ElementNotInteractableError{Locator: loc, Timeout: i.wait, Elapsed: elapsed, Err: err}
	}

	i.observe("wait_clickable", loc, elapsed)
	return el.CancelTimeout(), nil
}

// EnterText clears the element and types text. When secret is true the log
// entry carries a fixed-length mask instead of the literal text.
func (i *Interactor) EnterText(loc Locator, text string, secret bool) error {
	el, err := i.WaitClickable(loc)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := el.SelectAllText(); err != nil {
		return fmt.Errorf("clear element %s: %w", loc, err)
	}
	if text == "" {
		if err := el.Type(input.Backspace); err != nil {
			return fmt.Errorf("clear element %s: %w", loc, err)
		}
	} else if err := el.Input(text); err != nil {
		return fmt.Errorf("enter text into %s: %w", loc, err)
	}
	i.observe("enter_text", loc, time.Since(start))

	display := text
	if secret {
		display = secretMask
	}
	i.log.Debug("entered text",
		zap.String("locator", loc.String()),
		zap.String("text", display))
	return nil
}

// ReadText returns the visible text content of the element.
func (i *Interactor) ReadText(loc Locator) (string, error) {
	el, err := i.WaitVisible(loc)
	if err != nil {
		return "", err
	}

	start := time.Now()
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("read text of %s: %w", loc, err)
	}
	i.observe("read_text", loc, time.Since(start))
	return text, nil
}

// IsVisible is a non-throwing presence probe: false on any not-found or
// timeout condition instead of an error.
func (i *Interactor) IsVisible(loc Locator) bool {
	start := time.Now()
	el, err := i.find(loc, i.wait)
	if err == nil {
		err = el.WaitVisible()
	}
	elapsed := time.Since(start)

	if err != nil {
		i.log.Debug("element not visible",
			zap.String("locator", loc.String()),
			zap.Duration("elapsed", elapsed))
		return false
	}

	i.observe("is_visible", loc, elapsed)
	return true
}

// Click waits for the element to be clickable and clicks it.
func (i *Interactor) Click(loc Locator) error {
	el, err := i.WaitClickable(loc)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s: %w", loc, err)
	}
	i.observe("click", loc, time.Since(start))
	return nil
}

// observe records an action's wall-clock duration. Exceeding the threshold
// logs a warning; it never fails the action.
func (i *Interactor) observe(action string, loc Locator, elapsed time.Duration) {
	if i.threshold > 0 && elapsed > i.threshold {
		i.log.Warn("action exceeded performance threshold",
			zap.String("action", action),
			zap.String("locator", loc.String()),
			zap.Duration("duration", elapsed),
			zap.Duration("threshold", i.threshold))
		return
	}
	i.log.Debug("action timing",
		zap.String("action", action),
		zap.String("locator", loc.String()),
		zap.Duration("duration", elapsed))
}
