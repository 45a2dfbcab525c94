package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

const chromeDriverPort = 9515

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured, nil
		}
		return "", fmt.Errorf("chromedriver not found at %s", configured)
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}
	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH environment variable")
}

// findChromeBinary - finds Chrome/Chromium browser executable path
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
	}
	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// SeleniumFactory opens one WebDriver session per scenario, against a
// remote WebDriver server or a chromedriver it starts itself.
type SeleniumFactory struct {
	service   *selenium.Service
	remoteURL string
	caps      selenium.Capabilities
	logger    *logrus.Logger
}

// NewSeleniumFactory - prepares chrome capabilities and the WebDriver endpoint
func NewSeleniumFactory(opts Options, logger *logrus.Logger) (*SeleniumFactory, error) {
	args := []string{
		"--disable-dev-shm-usage",
		"--no-sandbox",
		fmt.Sprintf("--window-size=%d,%d", opts.ViewportWidth, opts.ViewportHeight),
	}
	if opts.Headless {
		args = append(args, "--headless=new")
	}

	chromeCaps := chrome.Capabilities{Args: args}
	if chromeBinary := findChromeBinary(opts.ChromeBinary); chromeBinary != "" {
		logger.Infof("Using Chrome binary at: %s", chromeBinary)
		chromeCaps.Path = chromeBinary
	}

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chromeCaps)

	f := &SeleniumFactory{caps: caps, logger: logger, remoteURL: opts.SeleniumURL}
	if f.remoteURL != "" {
		logger.Infof("Using WebDriver server at: %s", f.remoteURL)
		return f, nil
	}

	driverPath, err := findChromeDriver(opts.DriverPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}
	logger.Infof("Using ChromeDriver at: %s", driverPath)

	service, err := selenium.NewChromeDriverService(driverPath, chromeDriverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}
	f.service = service
	f.remoteURL = fmt.Sprintf("http://localhost:%d/wd/hub", chromeDriverPort)
	return f, nil
}

func (f *SeleniumFactory) Name() string { return Selenium }

// NewDriver - opens a new WebDriver session
func (f *SeleniumFactory) NewDriver(ctx context.Context) (interfaces.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wd, err := selenium.NewRemote(f.caps, f.remoteURL)
	if err != nil {
		if strings.Contains(err.Error(), "cannot find Chrome binary") {
			return nil, fmt.Errorf("failed to create webdriver: Chrome browser not found. Please install Google Chrome or set CHROME_BINARY_PATH environment variable. Error: %w", err)
		}
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}
	return &seleniumDriver{wd: wd, logger: f.logger}, nil
}

// Close - stops the chromedriver service when this factory started it
func (f *SeleniumFactory) Close() error {
	if f.service == nil {
		return nil
	}
	return f.service.Stop()
}

type seleniumDriver struct {
	wd     selenium.WebDriver
	logger *logrus.Logger
}

var seleniumKeys = map[entities.Key]string{
	entities.KeyArrowUp:    selenium.UpArrowKey,
	entities.KeyArrowDown:  selenium.DownArrowKey,
	entities.KeyArrowLeft:  selenium.LeftArrowKey,
	entities.KeyArrowRight: selenium.RightArrowKey,
}

// waitFor polls cond until it holds or ctx expires.
func (s *seleniumDriver) waitFor(ctx context.Context, cond selenium.Condition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.wd.WaitWithTimeoutAndInterval(cond, remaining(ctx, defaultCallTimeout), 100*time.Millisecond)
}

// findElement - waits for the first element matching loc
func (s *seleniumDriver) findElement(ctx context.Context, loc entities.Locator) (selenium.WebElement, error) {
	var found selenium.WebElement
	err := s.waitFor(ctx, func(wd selenium.WebDriver) (bool, error) {
		el, err := wd.FindElement(selenium.ByCSSSelector, string(loc))
		if err != nil {
			return false, nil
		}
		found = el
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("element %s not found: %w", loc, err)
	}
	return found, nil
}

// findDisplayed - waits for the first match of loc to be displayed
func (s *seleniumDriver) findDisplayed(ctx context.Context, loc entities.Locator) (selenium.WebElement, error) {
	var found selenium.WebElement
	err := s.waitFor(ctx, func(wd selenium.WebDriver) (bool, error) {
		el, err := wd.FindElement(selenium.ByCSSSelector, string(loc))
		if err != nil {
			return false, nil
		}
		displayed, err := el.IsDisplayed()
		if err != nil || !displayed {
			return false, nil
		}
		found = el
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("element %s not visible: %w", loc, err)
	}
	return found, nil
}

func (s *seleniumDriver) callScript(el selenium.WebElement, script string, arg any) (any, error) {
	return s.wd.ExecuteScript(
		fmt.Sprintf("return (%s).call(arguments[0], arguments[1]);", script),
		[]interface{}{el, arg},
	)
}

func (s *seleniumDriver) scriptBool(ctx context.Context, loc entities.Locator, script string, arg any) (bool, error) {
	el, err := s.findElement(ctx, loc)
	if err != nil {
		return false, err
	}
	res, err := s.callScript(el, script, arg)
	if err != nil {
		return false, err
	}
	b, _ := res.(bool)
	return b, nil
}

// Navigate - navigates browser to specified URL
func (s *seleniumDriver) Navigate(ctx context.Context, url string) error {
	if err := s.wd.SetPageLoadTimeout(remaining(ctx, defaultCallTimeout)); err != nil {
		s.logger.Warnf("Failed to set page load timeout: %v", err)
	}
	return s.wd.Get(url)
}

func (s *seleniumDriver) Title(ctx context.Context) (string, error) {
	return s.wd.Title()
}

// Type - clears the field and types text into it
func (s *seleniumDriver) Type(ctx context.Context, loc entities.Locator, text string) error {
	el, err := s.findDisplayed(ctx, loc)
	if err != nil {
		return err
	}
	if err := el.Clear(); err != nil {
		return fmt.Errorf("failed to clear element: %w", err)
	}
	return el.SendKeys(text)
}

// Click - scrolls the element into view and clicks it
func (s *seleniumDriver) Click(ctx context.Context, loc entities.Locator) error {
	el, err := s.findDisplayed(ctx, loc)
	if err != nil {
		return err
	}
	if _, err := s.wd.ExecuteScript("arguments[0].scrollIntoView({block: 'center'});", []interface{}{el}); err != nil {
		s.logger.Warnf("Failed to scroll to element: %v", err)
	}
	return el.Click()
}

func (s *seleniumDriver) JSClick(ctx context.Context, loc entities.Locator) error {
	el, err := s.findElement(ctx, loc)
	if err != nil {
		return err
	}
	_, err = s.callScript(el, jsClickScript, nil)
	return err
}

func (s *seleniumDriver) HoverAndClick(ctx context.Context, hover, target entities.Locator) error {
	el, err := s.findDisplayed(ctx, hover)
	if err != nil {
		return err
	}
	if err := el.MoveTo(0, 0); err != nil {
		return fmt.Errorf("failed to hover %s: %w", hover, err)
	}
	return s.Click(ctx, target)
}

func (s *seleniumDriver) SelectOptionByText(ctx context.Context, loc entities.Locator, text string) error {
	el, err := s.findDisplayed(ctx, loc)
	if err != nil {
		return err
	}
	option, err := el.FindElement(selenium.ByXPATH, fmt.Sprintf(".//option[normalize-space(.)=%s]", xpathLiteral(text)))
	if err != nil {
		return fmt.Errorf("option %q not found: %w", text, err)
	}
	return option.Click()
}

func (s *seleniumDriver) PressKey(ctx context.Context, loc entities.Locator, key entities.Key) error {
	keys, ok := seleniumKeys[key]
	if !ok {
		keys = string(key)
	}
	el, err := s.findDisplayed(ctx, loc)
	if err != nil {
		return err
	}
	return el.SendKeys(keys)
}

// DragAndDrop - simulates an HTML5 drag, which WebDriver mouse moves do not trigger
func (s *seleniumDriver) DragAndDrop(ctx context.Context, source, target entities.Locator) error {
	if _, err := s.findDisplayed(ctx, target); err != nil {
		return err
	}
	ok, err := s.scriptBool(ctx, source, dragDropScript, string(target))
	if err != nil {
		return err
	}
	if !ok {
		return scriptFailed("drag and drop", source)
	}
	return nil
}

func (s *seleniumDriver) ClickVisibleElements(ctx context.Context, loc entities.Locator) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	elements, err := s.wd.FindElements(selenium.ByCSSSelector, string(loc))
	if err != nil {
		return 0, err
	}

	clicked := 0
	for _, el := range elements {
		displayed, err := el.IsDisplayed()
		if err != nil || !displayed {
			continue
		}
		if err := el.Click(); err != nil {
			return clicked, err
		}
		clicked++
	}
	return clicked, nil
}

func (s *seleniumDriver) ClickLinkText(ctx context.Context, text string) error {
	var link selenium.WebElement
	err := s.waitFor(ctx, func(wd selenium.WebDriver) (bool, error) {
		el, err := wd.FindElement(selenium.ByLinkText, text)
		if err != nil {
			return false, nil
		}
		link = el
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("link %q not found: %w", text, err)
	}
	return link.Click()
}

func (s *seleniumDriver) Highlight(ctx context.Context, loc entities.Locator) error {
	el, err := s.findDisplayed(ctx, loc)
	if err != nil {
		return err
	}
	_, err = s.callScript(el, highlightScript, nil)
	return err
}

func (s *seleniumDriver) SwitchToFrame(ctx context.Context, loc entities.Locator) error {
	el, err := s.findElement(ctx, loc)
	if err != nil {
		return err
	}
	return s.wd.SwitchFrame(el)
}

func (s *seleniumDriver) SwitchToDefaultContent(ctx context.Context) error {
	return s.wd.SwitchFrame(nil)
}

func (s *seleniumDriver) WaitVisible(ctx context.Context, loc entities.Locator) error {
	_, err := s.findDisplayed(ctx, loc)
	return err
}

// IsElementVisible - checks if element is visible on page
func (s *seleniumDriver) IsElementVisible(ctx context.Context, loc entities.Locator) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	el, err := s.wd.FindElement(selenium.ByCSSSelector, string(loc))
	if err != nil {
		return false, nil
	}
	return el.IsDisplayed()
}

func (s *seleniumDriver) IsSelected(ctx context.Context, loc entities.Locator) (bool, error) {
	el, err := s.findElement(ctx, loc)
	if err != nil {
		return false, err
	}
	return el.IsSelected()
}

func (s *seleniumDriver) IsTextVisible(ctx context.Context, text string) (bool, error) {
	return s.scriptBool(ctx, rootLocator, textVisibleScript, text)
}

func (s *seleniumDriver) IsLinkTextVisible(ctx context.Context, text string) (bool, error) {
	return s.scriptBool(ctx, rootLocator, linkTextVisibleScript, text)
}

func (s *seleniumDriver) Text(ctx context.Context, loc entities.Locator) (string, error) {
	el, err := s.findElement(ctx, loc)
	if err != nil {
		return "", err
	}
	res, err := s.callScript(el, textScript, nil)
	if err != nil {
		return "", err
	}
	text, _ := res.(string)
	return text, nil
}

// Screenshot - takes screenshot of current page
func (s *seleniumDriver) Screenshot(ctx context.Context) ([]byte, error) {
	return s.wd.Screenshot()
}

// Close - ends the WebDriver session
func (s *seleniumDriver) Close() error {
	return s.wd.Quit()
}
