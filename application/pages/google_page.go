package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cesarrmg08/google-playwright-tests/domain/entities"
	"github.com/cesarrmg08/google-playwright-tests/domain/interfaces"
)

// Selectors for the Google search UI. Google's DOM is third-party and
// drifts over time; keeping these in one place makes a drift a one-line fix.
const (
	SearchBoxSelector        = "textarea[name='q']"
	ConsentButtonSelector    = "#L2AGLb, button[aria-label='Accept all']"
	ResultsContainerSelector = "#search"
	ResultTitleSelector      = "#search a h3"
	LogoSelector             = "img[alt='Google']"
)

const probeTimeout = 3 * time.Second

// GooglePage is the page object for the Google search UI: the home page
// and the results page it leads to.
type GooglePage struct {
	*BasePage
	baseURL string
	logger  *logrus.Logger
}

// NewGooglePage - creates a Google page object over a browser session
func NewGooglePage(browser interfaces.Browser, logger *logrus.Logger, baseURL string, defaultTimeout time.Duration) *GooglePage {
	return &GooglePage{
		BasePage: NewBasePage(browser, logger, defaultTimeout),
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// Open navigates to the home page and dismisses the consent dialog
// when one shows up.
func (g *GooglePage) Open(ctx context.Context) error {
	if err := g.BasePage.Open(ctx, g.baseURL); err != nil {
		return err
	}
	g.DismissConsent(ctx)

	if err := g.WaitVisible(ctx, SearchBoxSelector); err != nil {
		return fmt.Errorf("search box never appeared: %w", err)
	}
	return nil
}

// DismissConsent dismisses the cookie consent dialog when present.
// Best effort and idempotent: absence of the dialog is the normal case
// and never fails the caller.
func (g *GooglePage) DismissConsent(ctx context.Context) {
	if !g.IsVisible(ctx, ConsentButtonSelector, probeTimeout) {
		g.logger.Debug("no consent dialog present")
		return
	}
	if err := g.Click(ctx, ConsentButtonSelector); err != nil {
		g.logger.WithError(err).Warn("consent dialog present but could not be dismissed")
		return
	}
	if !g.IsHidden(ctx, ConsentButtonSelector, probeTimeout) {
		g.logger.Warn("consent dialog still visible after dismissal")
		return
	}
	g.logger.Info("consent dialog dismissed")
}

// Search submits a query and waits for the results view
func (g *GooglePage) Search(ctx context.Context, query string) error {
	if query == "" {
		return fmt.Errorf("refusing to search with an empty query")
	}

	if err := g.Fill(ctx, SearchBoxSelector, query); err != nil {
		return err
	}
	if err := g.Press(ctx, SearchBoxSelector, "Enter"); err != nil {
		return err
	}
	if err := g.WaitVisible(ctx, ResultsContainerSelector); err != nil {
		return fmt.Errorf("results never appeared for query %q: %w", query, err)
	}
	return nil
}

// ResultCount - returns the number of organic result titles on the page
func (g *GooglePage) ResultCount(ctx context.Context) (int, error) {
	return g.Count(ctx, ResultTitleSelector)
}

// ResultTitles - returns the displayed titles of the organic results
func (g *GooglePage) ResultTitles(ctx context.Context) ([]string, error) {
	results, err := g.Results(ctx)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(results))
	for _, r := range results {
		titles = append(titles, r.Title)
	}
	return titles, nil
}

// Results parses the current results page into result descriptors
func (g *GooglePage) Results(ctx context.Context) ([]entities.SearchResult, error) {
	html, err := g.Content(ctx)
	if err != nil {
		return nil, err
	}
	return ParseResults(html)
}

// ClickResult clicks the organic result at the given index and waits
// for navigation away from the results page.
func (g *GooglePage) ClickResult(ctx context.Context, index int) error {
	if err := g.browser.ClickNth(ctx, ResultTitleSelector, index); err != nil {
		return err
	}

	// the destination is an arbitrary third-party page; all we can wait
	// for is leaving the results URL
	deadline := time.Now().Add(g.defaultTimeout)
	for time.Now().Before(deadline) {
		url, err := g.URL(ctx)
		if err != nil {
			return err
		}
		if !strings.Contains(url, "/search") {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
	return fmt.Errorf("still on the results page after clicking result %d", index)
}

// IsOnHomePage - reports whether the current view is the search home page
func (g *GooglePage) IsOnHomePage(ctx context.Context) bool {
	url, err := g.URL(ctx)
	if err != nil {
		return false
	}
	if strings.Contains(url, "/search") {
		return false
	}
	return g.IsVisible(ctx, SearchBoxSelector, probeTimeout)
}

// IsOnResultsPage - reports whether the current view is a results page
func (g *GooglePage) IsOnResultsPage(ctx context.Context) bool {
	url, err := g.URL(ctx)
	if err != nil {
		return false
	}
	if !IsResultsURL(url) {
		return false
	}
	return g.IsVisible(ctx, ResultsContainerSelector, probeTimeout)
}

// IsResultsURL - reports whether a URL has the shape of a results page
func IsResultsURL(url string) bool {
	return strings.Contains(url, "/search") && strings.Contains(url, "q=")
}
