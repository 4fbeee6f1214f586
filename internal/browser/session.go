// Package browser owns the browser session lifecycle and the element
// interaction layer every page object goes through. Timing and failure
// semantics for UI actions are centralized here.
package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// BrowserDirVar optionally selects the cache directory for the downloaded
// browser artifact, so CI runners can persist it between runs.
const BrowserDirVar = "HRMCHECK_BROWSER_DIR"

// Config holds browser session configuration.
type Config struct {
	Headless          bool
	ViewportWidth     int
	ViewportHeight    int
	NavigationTimeout time.Duration

	// BrowserDir overrides the browser artifact cache directory.
	// Empty means the launcher default.
	BrowserDir string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Headless:          true,
		ViewportWidth:     1920,
		ViewportHeight:    1080,
		NavigationTimeout: 30 * time.Second,
		BrowserDir:        os.Getenv(BrowserDirVar),
	}
}

// Session is one exclusively-owned browser with a single page. It is created
// at test start and must be released with Close on every exit path.
type Session struct {
	cfg      Config
	log      *zap.Logger
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// NewSession launches a browser and opens a blank page. The returned session
// is ready for Navigate. On any setup failure everything already started is
// torn down before the error is returned.
func NewSession(ctx context.Context, cfg Config, log *zap.Logger) (*Session, error) {
	l := launcher.New().Headless(cfg.Headless)

	if cfg.BrowserDir != "" {
		b := launcher.NewBrowser()
		b.RootDir = cfg.BrowserDir
		bin, err := b.Get()
		if err != nil {
			return nil, fmt.Errorf("fetch browser into %s: %w", cfg.BrowserDir, err)
		}
		l = l.Bin(bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = b.Close()
		l.Cleanup()
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             cfg.ViewportWidth,
		Height:            cfg.ViewportHeight,
		DeviceScaleFactor: 1.0,
		Mobile:            false,
	}).Call(page); err != nil {
		log.Warn("failed to set viewport", zap.Error(err))
	}

	log.Debug("browser session started",
		zap.Bool("headless", cfg.Headless),
		zap.String("control_url", controlURL))

	return &Session{cfg: cfg, log: log, launcher: l, browser: b, page: page}, nil
}

// Page returns the session's page.
func (s *Session) Page() *rod.Page {
	return s.page
}

// Navigate loads url and waits for the load event, bounded by the configured
// navigation timeout.
func (s *Session) Navigate(url string) error {
	page := s.page.Timeout(s.cfg.NavigationTimeout)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for %s to load: %w", url, err)
	}
	s.log.Debug("navigated", zap.String("url", url))
	return nil
}

// Close releases the page, the browser, and the launcher artifacts.
// Safe to call exactly once per session; always called via defer.
func (s *Session) Close() error {
	var firstErr error
	if s.page != nil {
		if err := s.page.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.page = nil
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Cleanup()
		s.launcher = nil
	}
	s.log.Debug("browser session closed")
	return firstErr
}
