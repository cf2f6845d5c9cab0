package pages

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cesarrmg08/google-playwright-tests/domain/entities"
	"github.com/cesarrmg08/google-playwright-tests/domain/interfaces"
)

// BasePage bundles the interaction primitives every page object builds on.
// One BasePage wraps one live browser session; instances are never shared
// across tests.
type BasePage struct {
	browser        interfaces.Browser
	logger         *logrus.Logger
	defaultTimeout time.Duration
}

// NewBasePage - creates a base page over a browser session
func NewBasePage(browser interfaces.Browser, logger *logrus.Logger, defaultTimeout time.Duration) *BasePage {
	return &BasePage{
		browser:        browser,
		logger:         logger,
		defaultTimeout: defaultTimeout,
	}
}

// Open - navigates to a URL
func (p *BasePage) Open(ctx context.Context, url string) error {
	p.logger.WithField("url", url).Debug("navigating")
	return p.browser.Navigate(ctx, url)
}

// Click - clicks the first element matching the selector
func (p *BasePage) Click(ctx context.Context, selector string) error {
	p.logger.WithField("selector", selector).Debug("clicking")
	return p.browser.Click(ctx, selector)
}

// Fill - clears and fills an input field
func (p *BasePage) Fill(ctx context.Context, selector string, text string) error {
	p.logger.WithFields(logrus.Fields{"selector": selector, "text": text}).Debug("filling")
	return p.browser.Fill(ctx, selector, text)
}

// Press - sends a key to the matching element
func (p *BasePage) Press(ctx context.Context, selector string, key string) error {
	return p.browser.Press(ctx, selector, key)
}

// WaitVisible - waits for an element with the default timeout
func (p *BasePage) WaitVisible(ctx context.Context, selector string) error {
	return p.browser.WaitVisible(ctx, selector, p.defaultTimeout)
}

// WaitVisibleWithin - waits for an element with an explicit timeout
func (p *BasePage) WaitVisibleWithin(ctx context.Context, selector string, timeout time.Duration) error {
	return p.browser.WaitVisible(ctx, selector, timeout)
}

// WaitHidden - waits for an element to disappear with the default timeout
func (p *BasePage) WaitHidden(ctx context.Context, selector string) error {
	return p.browser.WaitHidden(ctx, selector, p.defaultTimeout)
}

// IsVisible checks element visibility as a boolean probe. The underlying
// timeout error is swallowed on purpose: presence checks must never abort
// the caller.
func (p *BasePage) IsVisible(ctx context.Context, selector string, timeout time.Duration) bool {
	if err := p.browser.WaitVisible(ctx, selector, timeout); err != nil {
		p.logger.WithField("selector", selector).Debug("element not visible")
		return false
	}
	return true
}

// IsHidden - boolean probe for element absence, never returns an error
func (p *BasePage) IsHidden(ctx context.Context, selector string, timeout time.Duration) bool {
	if err := p.browser.WaitHidden(ctx, selector, timeout); err != nil {
		return false
	}
	return true
}

// Text - reads the visible text of the first matching element
func (p *BasePage) Text(ctx context.Context, selector string) (string, error) {
	return p.browser.InnerText(ctx, selector)
}

// Attribute - reads an attribute of the first matching element
func (p *BasePage) Attribute(ctx context.Context, selector string, name string) (string, error) {
	return p.browser.GetAttribute(ctx, selector, name)
}

// Count - counts elements matching the selector
func (p *BasePage) Count(ctx context.Context, selector string) (int, error) {
	return p.browser.Count(ctx, selector)
}

// URL - returns the current page URL
func (p *BasePage) URL(ctx context.Context) (string, error) {
	return p.browser.CurrentURL(ctx)
}

// Title - returns the current page title
func (p *BasePage) Title(ctx context.Context) (string, error) {
	return p.browser.Title(ctx)
}

// Content - returns the full page HTML
func (p *BasePage) Content(ctx context.Context) (string, error) {
	return p.browser.Content(ctx)
}

// PageInfo - returns a snapshot of the current page identity
func (p *BasePage) PageInfo(ctx context.Context) (entities.PageInfo, error) {
	url, err := p.browser.CurrentURL(ctx)
	if err != nil {
		return entities.PageInfo{}, err
	}
	title, err := p.browser.Title(ctx)
	if err != nil {
		return entities.PageInfo{}, err
	}
	return entities.PageInfo{URL: url, Title: title}, nil
}

// CaptureScreenshot - captures the viewport to the given path
func (p *BasePage) CaptureScreenshot(ctx context.Context, path string) error {
	p.logger.WithField("path", path).Info("capturing screenshot")
	return p.browser.Screenshot(ctx, path)
}
