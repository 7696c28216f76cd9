package domain

// ExtractedArticle is the reader view of a page.
type ExtractedArticle struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	TextContent string `json:"textContent"`
	SiteName    string `json:"siteName,omitempty"`
}

// ProxiedFeed is an upstream body returned verbatim by the fetch proxy.
type ProxiedFeed struct {
	Body        []byte
	ContentType string
	StatusCode  int
}
