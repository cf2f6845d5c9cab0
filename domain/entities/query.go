package entities

// Query represents a single search scenario record
type Query struct {
	Text            string `json:"text" yaml:"text"`
	Description     string `json:"description" yaml:"description"`
	ExpectSubstring string `json:"expect_substring,omitempty" yaml:"expect_substring,omitempty"`
}

// FirstWord returns the first whitespace-delimited word of the query text
func (q Query) FirstWord() string {
	for i, r := range q.Text {
		if r == ' ' || r == '\t' {
			return q.Text[:i]
		}
	}
	return q.Text
}

// DefaultQueries is the built-in sample query table consumed by the
// smoke runner and the e2e specifications
var DefaultQueries = []Query{
	{
		Text:            "Playwright automation",
		Description:     "framework query with expected branded result",
		ExpectSubstring: "Playwright",
	},
	{
		Text:            "golang testing best practices",
		Description:     "multi word informational query",
		ExpectSubstring: "go",
	},
	{
		Text:        "weather today",
		Description: "short query with widget-heavy results",
	},
	{
		Text:            "selenium webdriver",
		Description:     "tooling query with expected branded result",
		ExpectSubstring: "Selenium",
	},
}
