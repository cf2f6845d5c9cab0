package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"github.com/cesarrmg08/google-playwright-tests/domain/interfaces"
	"github.com/cesarrmg08/google-playwright-tests/infrastructure/config"
)

const seleniumPort = 4444

type seleniumController struct {
	wd       selenium.WebDriver
	service  *selenium.Service
	settings config.Settings
	logger   *logrus.Logger
}

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver() (string, error) {
	if path := os.Getenv("BROWSER_DRIVER_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
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
func findChromeBinary() string {
	if path := os.Getenv("CHROME_BINARY_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
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

// NewSeleniumController starts ChromeDriver and returns a Browser backed by
// a Selenium WebDriver session. Used when BROWSER_BACKEND=selenium.
func NewSeleniumController(settings config.Settings, logger *logrus.Logger) (interfaces.Browser, error) {
	driverPath, err := findChromeDriver()
	if err != nil {
		return nil, err
	}

	logger.WithField("driver", driverPath).Info("starting chromedriver")
	service, err := selenium.NewChromeDriverService(driverPath, seleniumPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver service: %w", err)
	}

	caps := selenium.Capabilities{"browserName": "chrome"}
	chromeCaps := chrome.Capabilities{
		Args: []string{
			"--disable-notifications",
			"--disable-infobars",
			"--window-size=1280,720",
			"--lang=en-US",
		},
	}
	if settings.Headless {
		chromeCaps.Args = append(chromeCaps.Args, "--headless=new")
	}
	if binary := findChromeBinary(); binary != "" {
		chromeCaps.Path = binary
	}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", seleniumPort))
	if err != nil {
		service.Stop()
		return nil, fmt.Errorf("failed to create webdriver session: %w", err)
	}

	return &seleniumController{
		wd:       wd,
		service:  service,
		settings: settings,
		logger:   logger,
	}, nil
}

func (c *seleniumController) find(selector string) (selenium.WebElement, error) {
	el, err := c.wd.FindElement(selenium.ByCSSSelector, selector)
	if err != nil {
		return nil, fmt.Errorf("element %s not found: %w", selector, err)
	}
	return el, nil
}

// Navigate - navigates to the specified URL
func (c *seleniumController) Navigate(ctx context.Context, url string) error {
	if err := c.wd.Get(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// Click - clicks on an element by CSS selector
func (c *seleniumController) Click(ctx context.Context, selector string) error {
	if err := c.WaitVisible(ctx, selector, c.settings.DefaultTimeout); err != nil {
		return err
	}
	el, err := c.find(selector)
	if err != nil {
		return err
	}
	if err := el.Click(); err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

// Fill - clears an input field and types text into it
func (c *seleniumController) Fill(ctx context.Context, selector string, text string) error {
	if err := c.WaitVisible(ctx, selector, c.settings.DefaultTimeout); err != nil {
		return err
	}
	el, err := c.find(selector)
	if err != nil {
		return err
	}
	if err := el.Clear(); err != nil {
		return fmt.Errorf("failed to clear %s: %w", selector, err)
	}
	if err := el.SendKeys(text); err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

// Press - sends a key to an element
func (c *seleniumController) Press(ctx context.Context, selector string, key string) error {
	el, err := c.find(selector)
	if err != nil {
		return err
	}
	seq, err := keySequence(key)
	if err != nil {
		return err
	}
	if err := el.SendKeys(seq); err != nil {
		return fmt.Errorf("failed to press %s on %s: %w", key, selector, err)
	}
	return nil
}

// keySequence - maps a key name onto the WebDriver key code
func keySequence(key string) (string, error) {
	switch key {
	case "Enter":
		return selenium.EnterKey, nil
	case "Tab":
		return selenium.TabKey, nil
	case "Escape":
		return selenium.EscapeKey, nil
	default:
		if len(key) == 1 {
			return key, nil
		}
		return "", fmt.Errorf("unsupported key %q", key)
	}
}

// WaitVisible - waits for an element to become visible
func (c *seleniumController) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	err := c.wd.WaitWithTimeout(func(wd selenium.WebDriver) (bool, error) {
		el, err := wd.FindElement(selenium.ByCSSSelector, selector)
		if err != nil {
			return false, nil
		}
		displayed, err := el.IsDisplayed()
		if err != nil {
			return false, nil
		}
		return displayed, nil
	}, timeout)
	if err != nil {
		return fmt.Errorf("element %s not visible after %s: %w", selector, timeout, err)
	}
	return nil
}

// WaitHidden - waits for an element to disappear
func (c *seleniumController) WaitHidden(ctx context.Context, selector string, timeout time.Duration) error {
	err := c.wd.WaitWithTimeout(func(wd selenium.WebDriver) (bool, error) {
		el, err := wd.FindElement(selenium.ByCSSSelector, selector)
		if err != nil {
			return true, nil
		}
		displayed, err := el.IsDisplayed()
		if err != nil {
			return true, nil
		}
		return !displayed, nil
	}, timeout)
	if err != nil {
		return fmt.Errorf("element %s still visible after %s: %w", selector, timeout, err)
	}
	return nil
}

// InnerText - returns the visible text of the first matching element
func (c *seleniumController) InnerText(ctx context.Context, selector string) (string, error) {
	el, err := c.find(selector)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", selector, err)
	}
	return text, nil
}

// GetAttribute - returns an attribute value of the first matching element
func (c *seleniumController) GetAttribute(ctx context.Context, selector string, name string) (string, error) {
	el, err := c.find(selector)
	if err != nil {
		return "", err
	}
	value, err := el.GetAttribute(name)
	if err != nil {
		return "", fmt.Errorf("failed to read attribute %s of %s: %w", name, selector, err)
	}
	return value, nil
}

// ClickNth - clicks the element at index among those matching the selector
func (c *seleniumController) ClickNth(ctx context.Context, selector string, index int) error {
	if err := c.WaitVisible(ctx, selector, c.settings.DefaultTimeout); err != nil {
		return err
	}
	els, err := c.wd.FindElements(selenium.ByCSSSelector, selector)
	if err != nil {
		return fmt.Errorf("elements %s not found: %w", selector, err)
	}
	if index < 0 || index >= len(els) {
		return fmt.Errorf("element index %d out of range for %s (found %d)", index, selector, len(els))
	}
	if err := els[index].Click(); err != nil {
		return fmt.Errorf("failed to click %s[%d]: %w", selector, index, err)
	}
	return nil
}

// Count - returns the number of elements matching the selector
func (c *seleniumController) Count(ctx context.Context, selector string) (int, error) {
	els, err := c.wd.FindElements(selenium.ByCSSSelector, selector)
	if err != nil {
		return 0, nil
	}
	return len(els), nil
}

// CurrentURL - returns the current page URL
func (c *seleniumController) CurrentURL(ctx context.Context) (string, error) {
	url, err := c.wd.CurrentURL()
	if err != nil {
		return "", fmt.Errorf("failed to read current URL: %w", err)
	}
	return url, nil
}

// Title - returns the current page title
func (c *seleniumController) Title(ctx context.Context) (string, error) {
	title, err := c.wd.Title()
	if err != nil {
		return "", fmt.Errorf("failed to read page title: %w", err)
	}
	return title, nil
}

// Content - returns the full HTML of the current page
func (c *seleniumController) Content(ctx context.Context) (string, error) {
	source, err := c.wd.PageSource()
	if err != nil {
		return "", fmt.Errorf("failed to read page source: %w", err)
	}
	return source, nil
}

// Screenshot - captures the current viewport to a file
func (c *seleniumController) Screenshot(ctx context.Context, path string) error {
	data, err := c.wd.Screenshot()
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create screenshot directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}
	return nil
}

// Close - quits the webdriver session and stops chromedriver
func (c *seleniumController) Close() error {
	var closeErr error

	if c.wd != nil {
		if err := c.wd.Quit(); err != nil {
			closeErr = fmt.Errorf("failed to quit webdriver: %w", err)
		}
		c.wd = nil
	}

	if c.service != nil {
		if err := c.service.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop chromedriver: %w", err)
		}
		c.service = nil
	}

	return closeErr
}
