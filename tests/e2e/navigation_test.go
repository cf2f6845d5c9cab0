//go:build e2e

package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickResult_LeavesResultsPage(t *testing.T) {
	page := newGooglePage(t)
	ctx := context.Background()

	require.NoError(t, page.Open(ctx))
	require.NoError(t, page.Search(ctx, "Playwright automation"))

	results, err := page.Results(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, results, "need at least one result to navigate to")

	require.NoError(t, page.ClickResult(ctx, 0))

	info, err := page.PageInfo(ctx)
	require.NoError(t, err)
	assert.NotContains(t, info.URL, "google.com/search", "destination should leave the results domain")
	assert.NotEmpty(t, info.Title, "destination page should have a title")
}

func TestResults_DescriptorsAreWellFormed(t *testing.T) {
	page := newGooglePage(t)
	ctx := context.Background()

	require.NoError(t, page.Open(ctx))
	require.NoError(t, page.Search(ctx, "golang testing best practices"))

	results, err := page.Results(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, r := range results {
		assert.NotEmpty(t, r.Title, "every descriptor carries a displayed title")
		assert.Regexp(t, `^https?://`, r.URL, "every descriptor carries an absolute URL")
	}
}
