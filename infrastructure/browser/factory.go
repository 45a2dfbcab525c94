// Package browser adapts browser-automation libraries to the Driver port.
// A factory owns the heavyweight browser process and hands out isolated
// sessions, one per scenario.
package browser

import (
	"fmt"

	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const (
	Playwright = "playwright"
	Selenium   = "selenium"
	Rod        = "rod"
	Chromedp   = "chromedp"
)

// Options configure browser processes and sessions.
type Options struct {
	Headless       bool
	ViewportWidth  int
	ViewportHeight int

	// SeleniumURL points at a running WebDriver server; empty starts
	// chromedriver from DriverPath.
	SeleniumURL string
	DriverPath  string

	// ChromeBinary overrides the browser executable for selenium, rod and
	// chromedp.
	ChromeBinary string

	// RemoteURL attaches rod or chromedp to an already running browser
	// through its DevTools websocket.
	RemoteURL string
}

// NewFactory - starts the named browser backend
func NewFactory(kind string, opts Options, logger *logrus.Logger) (interfaces.DriverFactory, error) {
	if opts.ViewportWidth <= 0 || opts.ViewportHeight <= 0 {
		opts.ViewportWidth, opts.ViewportHeight = 1280, 720
	}

	logger.WithFields(logrus.Fields{
		"driver":   kind,
		"headless": opts.Headless,
	}).Info("Starting browser backend")

	switch kind {
	case Playwright:
		return NewPlaywrightFactory(opts, logger)
	case Selenium:
		return NewSeleniumFactory(opts, logger)
	case Rod:
		return NewRodFactory(opts, logger)
	case Chromedp:
		return NewChromedpFactory(opts, logger)
	}
	return nil, fmt.Errorf("unknown driver %q", kind)
}
