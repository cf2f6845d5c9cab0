package entities

// PageInfo is a snapshot of the current page identity
type PageInfo struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}
