package scpscrape

// ParsedPage is the document tree of one fetched page, scoped to its main
// content region. All three views consume the same parse.
type ParsedPage interface {
	// Blocks returns the content region's ordered content blocks.
	Blocks() []ContentBlock

	// MediaURLs returns the ordered, deduplicated absolute media URLs
	// inside the content region judged relevant to the item num, resolved
	// against pageURL.
	MediaURLs(pageURL string, num int) []string

	// Tags returns the page's ordered, deduplicated descriptive tags with
	// administrative classification tags filtered out.
	Tags() []string
}

// PageParser parses raw HTML into a ParsedPage.
type PageParser interface {
	// Parse parses html and locates the main content region. It returns an
	// ENOTFOUND error when the region is absent; that condition is distinct
	// from a transport failure.
	Parse(html string) (ParsedPage, error)
}
