package browser

import (
	"context"
	"fmt"
	"sync"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// PlaywrightFactory shares one playwright server and browser; every session
// gets its own browser context.
type PlaywrightFactory struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
	logger  *logrus.Logger
}

// NewPlaywrightFactory - starts playwright and launches chromium
func NewPlaywrightFactory(opts Options, logger *logrus.Logger) (*PlaywrightFactory, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launch := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	}
	if opts.ChromeBinary != "" {
		launch.ExecutablePath = playwright.String(opts.ChromeBinary)
	}

	browser, err := pw.Chromium.Launch(launch)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &PlaywrightFactory{pw: pw, browser: browser, opts: opts, logger: logger}, nil
}

func (f *PlaywrightFactory) Name() string { return Playwright }

// NewDriver - opens an isolated browser context with one page
func (f *PlaywrightFactory) NewDriver(ctx context.Context) (interfaces.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bctx, err := f.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  f.opts.ViewportWidth,
			Height: f.opts.ViewportHeight,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	return &playwrightDriver{
		context: bctx,
		page:    page,
		frame:   page.MainFrame(),
		logger:  f.logger,
	}, nil
}

// Close - closes the browser and stops playwright
func (f *PlaywrightFactory) Close() error {
	var firstErr error
	if err := f.browser.Close(); err != nil {
		firstErr = fmt.Errorf("failed to close browser: %w", err)
	}
	if err := f.pw.Stop(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to stop playwright: %w", err)
	}
	return firstErr
}

type playwrightDriver struct {
	context playwright.BrowserContext
	page    playwright.Page
	logger  *logrus.Logger

	mu    sync.Mutex
	frame playwright.Frame
}

func timeoutMS(ctx context.Context) *float64 {
	return playwright.Float(float64(remaining(ctx, defaultCallTimeout).Milliseconds()))
}

// locate returns the first match of loc in the current frame.
func (d *playwrightDriver) locate(loc entities.Locator) playwright.Locator {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame.Locator(string(loc)).First()
}

func (d *playwrightDriver) evaluate(ctx context.Context, loc entities.Locator, script string, arg any) (any, error) {
	return d.locate(loc).Evaluate(
		fmt.Sprintf("(el, arg) => (%s).call(el, arg)", script),
		arg,
		playwright.LocatorEvaluateOptions{Timeout: timeoutMS(ctx)},
	)
}

func (d *playwrightDriver) evaluateBool(ctx context.Context, loc entities.Locator, script string, arg any) (bool, error) {
	res, err := d.evaluate(ctx, loc, script, arg)
	if err != nil {
		return false, err
	}
	b, _ := res.(bool)
	return b, nil
}

// Navigate - navigates to the specified URL
func (d *playwrightDriver) Navigate(ctx context.Context, url string) error {
	if _, err := d.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   timeoutMS(ctx),
	}); err != nil {
		return err
	}

	d.mu.Lock()
	d.frame = d.page.MainFrame()
	d.mu.Unlock()
	return nil
}

func (d *playwrightDriver) Title(ctx context.Context) (string, error) {
	return d.page.Title()
}

// Type - replaces the field content with text
func (d *playwrightDriver) Type(ctx context.Context, loc entities.Locator, text string) error {
	return d.locate(loc).Fill(text, playwright.LocatorFillOptions{Timeout: timeoutMS(ctx)})
}

func (d *playwrightDriver) Click(ctx context.Context, loc entities.Locator) error {
	return d.locate(loc).Click(playwright.LocatorClickOptions{Timeout: timeoutMS(ctx)})
}

func (d *playwrightDriver) JSClick(ctx context.Context, loc entities.Locator) error {
	_, err := d.evaluate(ctx, loc, jsClickScript, nil)
	return err
}

func (d *playwrightDriver) HoverAndClick(ctx context.Context, hover, target entities.Locator) error {
	if err := d.locate(hover).Hover(playwright.LocatorHoverOptions{Timeout: timeoutMS(ctx)}); err != nil {
		return fmt.Errorf("hover %s: %w", hover, err)
	}
	return d.locate(target).Click(playwright.LocatorClickOptions{Timeout: timeoutMS(ctx)})
}

func (d *playwrightDriver) SelectOptionByText(ctx context.Context, loc entities.Locator, text string) error {
	_, err := d.locate(loc).SelectOption(
		playwright.SelectOptionValues{Labels: &[]string{text}},
		playwright.LocatorSelectOptionOptions{Timeout: timeoutMS(ctx)},
	)
	return err
}

func (d *playwrightDriver) PressKey(ctx context.Context, loc entities.Locator, key entities.Key) error {
	return d.locate(loc).Press(string(key), playwright.LocatorPressOptions{Timeout: timeoutMS(ctx)})
}

func (d *playwrightDriver) DragAndDrop(ctx context.Context, source, target entities.Locator) error {
	return d.locate(source).DragTo(d.locate(target), playwright.LocatorDragToOptions{Timeout: timeoutMS(ctx)})
}

// ClickVisibleElements - clicks every currently visible match of loc
func (d *playwrightDriver) ClickVisibleElements(ctx context.Context, loc entities.Locator) (int, error) {
	d.mu.Lock()
	all, err := d.frame.Locator(string(loc)).All()
	d.mu.Unlock()
	if err != nil {
		return 0, err
	}

	clicked := 0
	for _, el := range all {
		visible, err := el.IsVisible()
		if err != nil || !visible {
			continue
		}
		if err := el.Click(playwright.LocatorClickOptions{Timeout: timeoutMS(ctx)}); err != nil {
			return clicked, err
		}
		clicked++
	}
	return clicked, nil
}

func (d *playwrightDriver) ClickLinkText(ctx context.Context, text string) error {
	d.mu.Lock()
	link := d.frame.GetByRole(*playwright.AriaRoleLink, playwright.FrameGetByRoleOptions{
		Name:  text,
		Exact: playwright.Bool(true),
	}).First()
	d.mu.Unlock()
	return link.Click(playwright.LocatorClickOptions{Timeout: timeoutMS(ctx)})
}

func (d *playwrightDriver) Highlight(ctx context.Context, loc entities.Locator) error {
	if err := d.WaitVisible(ctx, loc); err != nil {
		return err
	}
	_, err := d.evaluate(ctx, loc, highlightScript, nil)
	return err
}

// SwitchToFrame - scopes subsequent calls to the iframe's document
func (d *playwrightDriver) SwitchToFrame(ctx context.Context, loc entities.Locator) error {
	handle, err := d.locate(loc).ElementHandle(playwright.LocatorElementHandleOptions{Timeout: timeoutMS(ctx)})
	if err != nil {
		return err
	}
	frame, err := handle.ContentFrame()
	if err != nil {
		return err
	}
	if frame == nil {
		return fmt.Errorf("%s is not a frame", loc)
	}

	d.mu.Lock()
	d.frame = frame
	d.mu.Unlock()
	return nil
}

func (d *playwrightDriver) SwitchToDefaultContent(ctx context.Context) error {
	d.mu.Lock()
	d.frame = d.page.MainFrame()
	d.mu.Unlock()
	return nil
}

func (d *playwrightDriver) WaitVisible(ctx context.Context, loc entities.Locator) error {
	return d.locate(loc).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: timeoutMS(ctx),
	})
}

func (d *playwrightDriver) IsElementVisible(ctx context.Context, loc entities.Locator) (bool, error) {
	return d.locate(loc).IsVisible()
}

func (d *playwrightDriver) IsSelected(ctx context.Context, loc entities.Locator) (bool, error) {
	return d.evaluateBool(ctx, loc, selectedScript, nil)
}

func (d *playwrightDriver) IsTextVisible(ctx context.Context, text string) (bool, error) {
	return d.evaluateBool(ctx, rootLocator, textVisibleScript, text)
}

func (d *playwrightDriver) IsLinkTextVisible(ctx context.Context, text string) (bool, error) {
	return d.evaluateBool(ctx, rootLocator, linkTextVisibleScript, text)
}

func (d *playwrightDriver) Text(ctx context.Context, loc entities.Locator) (string, error) {
	res, err := d.evaluate(ctx, loc, textScript, nil)
	if err != nil {
		return "", err
	}
	s, _ := res.(string)
	return s, nil
}

// Screenshot - captures the full page
func (d *playwrightDriver) Screenshot(ctx context.Context) ([]byte, error) {
	return d.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
		Timeout:  timeoutMS(ctx),
	})
}

// Close - closes the session's browser context
func (d *playwrightDriver) Close() error {
	if err := d.context.Close(); err != nil {
		d.logger.Warnf("Failed to close browser context: %v", err)
		return err
	}
	return nil
}
