//go:build e2e

package e2e

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/cesarrmg08/google-playwright-tests/application/pages"
)

func TestHomePage(t *testing.T) {
	g := NewWithT(t)

	page := newGooglePage(t)
	ctx := context.Background()

	g.Expect(page.Open(ctx)).To(Succeed())
	g.Expect(page.IsOnHomePage(ctx)).To(BeTrue())
	g.Expect(page.IsOnResultsPage(ctx)).To(BeFalse())

	title, err := page.Title(ctx)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(title).NotTo(BeEmpty())

	g.Expect(page.IsVisible(ctx, pages.SearchBoxSelector, suiteSettings(t).DefaultTimeout)).To(BeTrue())
}
