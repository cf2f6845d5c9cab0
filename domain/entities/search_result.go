package entities

// SearchResult represents one organic result on a results page.
// Instances are derived transiently from DOM reads and never persisted.
type SearchResult struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}
