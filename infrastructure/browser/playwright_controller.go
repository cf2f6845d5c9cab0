package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/cesarrmg08/google-playwright-tests/domain/interfaces"
	"github.com/cesarrmg08/google-playwright-tests/infrastructure/config"
)

type playwrightController struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	browserCtx playwright.BrowserContext
	page       playwright.Page
	settings   config.Settings
	logger     *logrus.Logger
	store      interfaces.ArtifactStore
}

// NewPlaywrightController launches Chromium through Playwright and returns a
// Browser backed by a fresh context. Storage state saved by a previous run is
// restored when the store holds one, so a dismissed consent dialog stays
// dismissed across runs.
func NewPlaywrightController(settings config.Settings, logger *logrus.Logger, store interfaces.ArtifactStore) (interfaces.Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(settings.Headless),
		SlowMo:   playwright.Float(float64(settings.SlowMo.Milliseconds())),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		Locale: playwright.String("en-US"),
	}

	if store != nil {
		if data, err := store.LoadStorageState(); err == nil && data != nil {
			var state playwright.StorageState
			if err := json.Unmarshal(data, &state); err == nil {
				contextOptions.StorageState = state.ToOptionalStorageState()
			}
		}
	}

	browserCtx, err := b.NewContext(contextOptions)
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	browserCtx.SetDefaultTimeout(float64(settings.DefaultTimeout.Milliseconds()))
	browserCtx.SetDefaultNavigationTimeout(float64(settings.NavigationTimeout.Milliseconds()))

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &playwrightController{
		pw:         pw,
		browser:    b,
		browserCtx: browserCtx,
		page:       page,
		settings:   settings,
		logger:     logger,
		store:      store,
	}, nil
}

// Navigate - navigates to the specified URL
func (c *playwrightController) Navigate(ctx context.Context, url string) error {
	_, err := c.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(c.settings.NavigationTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// Click - clicks on an element by CSS selector
func (c *playwrightController) Click(ctx context.Context, selector string) error {
	locator := c.page.Locator(selector).First()

	err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(c.settings.DefaultTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("element %s not found or not visible: %w", selector, err)
	}

	if err := locator.Click(); err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

// Fill - clears an input field and types text into it
func (c *playwrightController) Fill(ctx context.Context, selector string, text string) error {
	locator := c.page.Locator(selector).First()

	err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(c.settings.DefaultTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("input field %s not found: %w", selector, err)
	}

	if err := locator.Clear(); err != nil {
		return fmt.Errorf("failed to clear %s: %w", selector, err)
	}
	if err := locator.Fill(text); err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

// Press - sends a key to an element
func (c *playwrightController) Press(ctx context.Context, selector string, key string) error {
	if err := c.page.Locator(selector).First().Press(key); err != nil {
		return fmt.Errorf("failed to press %s on %s: %w", key, selector, err)
	}
	return nil
}

// WaitVisible - waits for an element to become visible
func (c *playwrightController) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	err := c.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("element %s not visible after %s: %w", selector, timeout, err)
	}
	return nil
}

// WaitHidden - waits for an element to disappear
func (c *playwrightController) WaitHidden(ctx context.Context, selector string, timeout time.Duration) error {
	err := c.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("element %s still visible after %s: %w", selector, timeout, err)
	}
	return nil
}

// InnerText - returns the visible text of the first matching element
func (c *playwrightController) InnerText(ctx context.Context, selector string) (string, error) {
	text, err := c.page.Locator(selector).First().InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(float64(c.settings.DefaultTimeout.Milliseconds())),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", selector, err)
	}
	return text, nil
}

// GetAttribute - returns an attribute value of the first matching element
func (c *playwrightController) GetAttribute(ctx context.Context, selector string, name string) (string, error) {
	value, err := c.page.Locator(selector).First().GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(float64(c.settings.DefaultTimeout.Milliseconds())),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read attribute %s of %s: %w", name, selector, err)
	}
	return value, nil
}

// ClickNth - clicks the element at index among those matching the selector
func (c *playwrightController) ClickNth(ctx context.Context, selector string, index int) error {
	locator := c.page.Locator(selector).Nth(index)

	err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(c.settings.DefaultTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("element %s[%d] not found or not visible: %w", selector, index, err)
	}

	if err := locator.Click(); err != nil {
		return fmt.Errorf("failed to click %s[%d]: %w", selector, index, err)
	}
	return nil
}

// Count - returns the number of elements matching the selector
func (c *playwrightController) Count(ctx context.Context, selector string) (int, error) {
	count, err := c.page.Locator(selector).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", selector, err)
	}
	return count, nil
}

// CurrentURL - returns the current page URL
func (c *playwrightController) CurrentURL(ctx context.Context) (string, error) {
	return c.page.URL(), nil
}

// Title - returns the current page title
func (c *playwrightController) Title(ctx context.Context) (string, error) {
	title, err := c.page.Title()
	if err != nil {
		return "", fmt.Errorf("failed to read page title: %w", err)
	}
	return title, nil
}

// Content - returns the full HTML of the current page
func (c *playwrightController) Content(ctx context.Context) (string, error) {
	content, err := c.page.Content()
	if err != nil {
		return "", fmt.Errorf("failed to read page content: %w", err)
	}
	return content, nil
}

// Screenshot - captures the current viewport to a file
func (c *playwrightController) Screenshot(ctx context.Context, path string) error {
	_, err := c.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return nil
}

// Close - persists storage state and shuts the browser down
func (c *playwrightController) Close() error {
	var closeErr error

	if c.store != nil && c.browserCtx != nil {
		if state, err := c.browserCtx.StorageState(); err == nil {
			if data, err := json.Marshal(state); err == nil {
				if err := c.store.SaveStorageState(data); err != nil && c.logger != nil {
					c.logger.WithError(err).Warn("failed to persist storage state")
				}
			}
		}
	}

	if c.browserCtx != nil {
		if err := c.browserCtx.Close(); err != nil && !isClosedErr(err) {
			closeErr = fmt.Errorf("failed to close context: %w", err)
		}
		c.browserCtx = nil
	}

	if c.browser != nil {
		if err := c.browser.Close(); err != nil && !isClosedErr(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to close browser: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to close browser: %w", err)
			}
		}
		c.browser = nil
	}

	if c.pw != nil {
		if err := c.pw.Stop(); err != nil && !isClosedErr(err) && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
		c.pw = nil
	}

	return closeErr
}

// isClosedErr - reports whether an error only says the target is already gone
func isClosedErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "closed") || strings.Contains(msg, "target closed")
}
