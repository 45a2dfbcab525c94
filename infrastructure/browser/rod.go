package browser

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
)

// RodFactory launches (or attaches to) one Chrome and opens an incognito
// context per session.
type RodFactory struct {
	browser *rod.Browser
	lnch    *launcher.Launcher
	opts    Options
	logger  *logrus.Logger
}

// NewRodFactory - launches chrome or connects to RemoteURL
func NewRodFactory(opts Options, logger *logrus.Logger) (*RodFactory, error) {
	f := &RodFactory{opts: opts, logger: logger}

	wsURL := opts.RemoteURL
	if wsURL != "" {
		logger.Infof("Connecting to remote browser at %s", wsURL)
	} else {
		l := launcher.New().Headless(opts.Headless)
		if opts.ChromeBinary != "" {
			l = l.Bin(opts.ChromeBinary)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("failed to launch browser: %w", err)
		}
		wsURL = u
		f.lnch = l
	}

	b := rod.New().ControlURL(wsURL)
	if err := b.Connect(); err != nil {
		f.cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	if err := b.IgnoreCertErrors(true); err != nil {
		logger.Warnf("Failed to ignore certificate errors: %v", err)
	}
	f.browser = b
	return f, nil
}

func (f *RodFactory) Name() string { return Rod }

// NewDriver - opens an incognito page
func (f *RodFactory) NewDriver(ctx context.Context) (interfaces.Driver, error) {
	incognito, err := f.browser.Context(ctx).Incognito()
	if err != nil {
		return nil, fmt.Errorf("failed to create incognito context: %w", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		incognito.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	// Drop the creation context so later calls are bounded only by their own.
	page = page.Context(context.Background())

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             f.opts.ViewportWidth,
		Height:            f.opts.ViewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		f.logger.Warnf("Failed to set viewport: %v", err)
	}

	return &rodDriver{incognito: incognito, page: page, scope: page, logger: f.logger}, nil
}

func (f *RodFactory) cleanup() {
	if f.lnch != nil {
		f.lnch.Cleanup()
		f.lnch = nil
	}
}

// Close - closes the browser and removes the launcher's profile
func (f *RodFactory) Close() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
	}
	f.cleanup()
	return err
}

type rodDriver struct {
	incognito *rod.Browser
	page      *rod.Page
	logger    *logrus.Logger

	mu    sync.Mutex
	scope *rod.Page
}

var rodKeys = map[entities.Key]input.Key{
	entities.KeyArrowUp:    input.ArrowUp,
	entities.KeyArrowDown:  input.ArrowDown,
	entities.KeyArrowLeft:  input.ArrowLeft,
	entities.KeyArrowRight: input.ArrowRight,
}

// current returns the page or frame calls are scoped to, bound to ctx.
func (d *rodDriver) current(ctx context.Context) *rod.Page {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scope.Context(ctx)
}

func (d *rodDriver) element(ctx context.Context, loc entities.Locator) (*rod.Element, error) {
	el, err := d.current(ctx).Element(string(loc))
	if err != nil {
		return nil, fmt.Errorf("element %s not found: %w", loc, err)
	}
	return el, nil
}

func (d *rodDriver) visibleElement(ctx context.Context, loc entities.Locator) (*rod.Element, error) {
	el, err := d.element(ctx, loc)
	if err != nil {
		return nil, err
	}
	if err := el.WaitVisible(); err != nil {
		return nil, fmt.Errorf("element %s not visible: %w", loc, err)
	}
	return el, nil
}

func (d *rodDriver) evalBool(ctx context.Context, loc entities.Locator, script string, args ...interface{}) (bool, error) {
	el, err := d.element(ctx, loc)
	if err != nil {
		return false, err
	}
	res, err := el.Eval(script, args...)
	if err != nil {
		return false, err
	}
	return res.Value.Bool(), nil
}

// Navigate - loads url in the top-level page and resets the frame scope
func (d *rodDriver) Navigate(ctx context.Context, url string) error {
	page := d.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	if err := page.WaitLoad(); err != nil {
		return err
	}

	d.mu.Lock()
	d.scope = d.page
	d.mu.Unlock()
	return nil
}

func (d *rodDriver) Title(ctx context.Context) (string, error) {
	res, err := d.page.Context(ctx).Eval(`() => document.title`)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// Type - selects the current content and replaces it with text
func (d *rodDriver) Type(ctx context.Context, loc entities.Locator, text string) error {
	el, err := d.visibleElement(ctx, loc)
	if err != nil {
		return err
	}
	if err := el.SelectAllText(); err != nil {
		return fmt.Errorf("failed to select text: %w", err)
	}
	return el.Input(text)
}

func (d *rodDriver) Click(ctx context.Context, loc entities.Locator) error {
	el, err := d.visibleElement(ctx, loc)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

func (d *rodDriver) JSClick(ctx context.Context, loc entities.Locator) error {
	el, err := d.element(ctx, loc)
	if err != nil {
		return err
	}
	_, err = el.Eval(jsClickScript)
	return err
}

func (d *rodDriver) HoverAndClick(ctx context.Context, hover, target entities.Locator) error {
	el, err := d.visibleElement(ctx, hover)
	if err != nil {
		return err
	}
	if err := el.Hover(); err != nil {
		return fmt.Errorf("failed to hover %s: %w", hover, err)
	}
	return d.Click(ctx, target)
}

func (d *rodDriver) SelectOptionByText(ctx context.Context, loc entities.Locator, text string) error {
	el, err := d.visibleElement(ctx, loc)
	if err != nil {
		return err
	}
	return el.Select([]string{text}, true, rod.SelectorTypeText)
}

func (d *rodDriver) PressKey(ctx context.Context, loc entities.Locator, key entities.Key) error {
	k, ok := rodKeys[key]
	if !ok {
		return fmt.Errorf("unsupported key %q", key)
	}
	el, err := d.visibleElement(ctx, loc)
	if err != nil {
		return err
	}
	return el.Type(k)
}

func (d *rodDriver) DragAndDrop(ctx context.Context, source, target entities.Locator) error {
	if _, err := d.visibleElement(ctx, target); err != nil {
		return err
	}
	ok, err := d.evalBool(ctx, source, dragDropScript, string(target))
	if err != nil {
		return err
	}
	if !ok {
		return scriptFailed("drag and drop", source)
	}
	return nil
}

func (d *rodDriver) ClickVisibleElements(ctx context.Context, loc entities.Locator) (int, error) {
	elements, err := d.current(ctx).Elements(string(loc))
	if err != nil {
		return 0, err
	}

	clicked := 0
	for _, el := range elements {
		visible, err := el.Visible()
		if err != nil || !visible {
			continue
		}
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			return clicked, err
		}
		clicked++
	}
	return clicked, nil
}

func (d *rodDriver) ClickLinkText(ctx context.Context, text string) error {
	link, err := d.current(ctx).ElementR("a", "^\\s*"+regexp.QuoteMeta(text)+"\\s*$")
	if err != nil {
		return fmt.Errorf("link %q not found: %w", text, err)
	}
	return link.Click(proto.InputMouseButtonLeft, 1)
}

func (d *rodDriver) Highlight(ctx context.Context, loc entities.Locator) error {
	el, err := d.visibleElement(ctx, loc)
	if err != nil {
		return err
	}
	_, err = el.Eval(highlightScript)
	return err
}

// SwitchToFrame - scopes subsequent calls to the iframe's document
func (d *rodDriver) SwitchToFrame(ctx context.Context, loc entities.Locator) error {
	el, err := d.element(ctx, loc)
	if err != nil {
		return err
	}
	frame, err := el.Frame()
	if err != nil {
		return fmt.Errorf("%s is not a frame: %w", loc, err)
	}
	if err := frame.WaitLoad(); err != nil {
		return err
	}

	d.mu.Lock()
	d.scope = frame.Context(context.Background())
	d.mu.Unlock()
	return nil
}

func (d *rodDriver) SwitchToDefaultContent(ctx context.Context) error {
	d.mu.Lock()
	d.scope = d.page
	d.mu.Unlock()
	return nil
}

func (d *rodDriver) WaitVisible(ctx context.Context, loc entities.Locator) error {
	_, err := d.visibleElement(ctx, loc)
	return err
}

func (d *rodDriver) IsElementVisible(ctx context.Context, loc entities.Locator) (bool, error) {
	has, el, err := d.current(ctx).Has(string(loc))
	if err != nil || !has {
		return false, err
	}
	return el.Visible()
}

func (d *rodDriver) IsSelected(ctx context.Context, loc entities.Locator) (bool, error) {
	return d.evalBool(ctx, loc, selectedScript)
}

func (d *rodDriver) IsTextVisible(ctx context.Context, text string) (bool, error) {
	return d.evalBool(ctx, rootLocator, textVisibleScript, text)
}

func (d *rodDriver) IsLinkTextVisible(ctx context.Context, text string) (bool, error) {
	return d.evalBool(ctx, rootLocator, linkTextVisibleScript, text)
}

func (d *rodDriver) Text(ctx context.Context, loc entities.Locator) (string, error) {
	el, err := d.element(ctx, loc)
	if err != nil {
		return "", err
	}
	res, err := el.Eval(textScript)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

func (d *rodDriver) Screenshot(ctx context.Context) ([]byte, error) {
	return d.page.Context(ctx).Screenshot(true, nil)
}

// Close - closes the page and disposes the incognito context
func (d *rodDriver) Close() error {
	if err := d.page.Close(); err != nil {
		d.logger.Warnf("Failed to close page: %v", err)
	}
	return d.incognito.Close()
}
