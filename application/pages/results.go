package pages

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/cesarrmg08/google-playwright-tests/domain/entities"
)

// ParseResults extracts organic result descriptors from results page HTML.
// Anchors without an h3 title or without an absolute destination are
// skipped: those are widgets, ads and internal navigation.
func ParseResults(html string) ([]entities.SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse results HTML: %w", err)
	}

	var results []entities.SearchResult
	seen := make(map[string]bool)

	doc.Find("#search a").Each(func(_ int, a *goquery.Selection) {
		title := strings.TrimSpace(a.Find("h3").First().Text())
		if title == "" {
			return
		}

		href, ok := a.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(href, "http") {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true

		results = append(results, entities.SearchResult{
			URL:   href,
			Title: title,
		})
	})

	return results, nil
}
