package interfaces

import (
	"context"
	"time"
)

// Browser defines the automation capability surface the page objects
// consume. Implementations resolve selectors against live DOM state on
// every call; element handles are never cached across calls.
type Browser interface {
	// Navigate navigates to a URL and waits for the document to load
	Navigate(ctx context.Context, url string) error

	// Click clicks the first element matching the selector
	Click(ctx context.Context, selector string) error

	// Fill clears the first matching element and types text into it
	Fill(ctx context.Context, selector string, text string) error

	// Press sends a single key (e.g. "Enter") to the matching element
	Press(ctx context.Context, selector string, key string) error

	// WaitVisible waits until the matching element is visible,
	// returning an error when the timeout expires
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// WaitHidden waits until no matching element is visible
	WaitHidden(ctx context.Context, selector string, timeout time.Duration) error

	// InnerText returns the visible text of the first matching element
	InnerText(ctx context.Context, selector string) (string, error)

	// GetAttribute returns an attribute of the first matching element
	GetAttribute(ctx context.Context, selector string, name string) (string, error)

	// Count returns the number of elements matching the selector
	Count(ctx context.Context, selector string) (int, error)

	// ClickNth clicks the element at index among those matching the selector
	ClickNth(ctx context.Context, selector string, index int) error

	// CurrentURL returns the current page URL
	CurrentURL(ctx context.Context) (string, error)

	// Title returns the current page title
	Title(ctx context.Context) (string, error)

	// Content returns the full HTML of the current page
	Content(ctx context.Context) (string, error)

	// Screenshot captures the current viewport to the given path
	Screenshot(ctx context.Context, path string) error

	// Close shuts the browser down
	Close() error
}
