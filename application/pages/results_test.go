package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsHTML = `
<html><body>
<div id="search">
  <div class="g">
    <a href="https://playwright.dev/"><h3>Playwright: Fast and reliable end-to-end testing</h3></a>
  </div>
  <div class="g">
    <a href="https://github.com/microsoft/playwright"><h3>microsoft/playwright - GitHub</h3></a>
  </div>
  <!-- duplicate anchor pointing at the same destination -->
  <a href="https://playwright.dev/"><h3>Playwright: Fast and reliable end-to-end testing</h3></a>
  <!-- internal navigation without an absolute URL -->
  <a href="/search?q=playwright&amp;start=10"><h3>More results</h3></a>
  <!-- anchor without a title is a widget, not a result -->
  <a href="https://example.com/ad">Sponsored</a>
</div>
<div id="footer">
  <a href="https://policies.google.com/"><h3>Outside the results container</h3></a>
</div>
</body></html>`

func TestParseResults(t *testing.T) {
	results, err := ParseResults(resultsHTML)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "https://playwright.dev/", results[0].URL)
	assert.Equal(t, "Playwright: Fast and reliable end-to-end testing", results[0].Title)
	assert.Equal(t, "https://github.com/microsoft/playwright", results[1].URL)
	assert.Equal(t, "microsoft/playwright - GitHub", results[1].Title)
}

func TestParseResults_EmptyPage(t *testing.T) {
	results, err := ParseResults("<html><body><p>no results container</p></body></html>")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIsResultsURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want bool
	}{
		{"results url", "https://www.google.com/search?q=playwright+automation", true},
		{"results url with extra params", "https://www.google.com/search?sca_esv=1&q=go", true},
		{"home page", "https://www.google.com/", false},
		{"search path without query", "https://www.google.com/search", false},
		{"query without search path", "https://example.com/?q=playwright", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsResultsURL(tc.url))
		})
	}
}
