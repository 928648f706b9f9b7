package mock

import "github.com/Suixin04/scp-scraper"

var _ scpscrape.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of scpscrape.PageParser.
type PageParser struct {
	ParseFn func(html string) (scpscrape.ParsedPage, error)
}

func (p *PageParser) Parse(html string) (scpscrape.ParsedPage, error) {
	return p.ParseFn(html)
}

var _ scpscrape.ParsedPage = (*ParsedPage)(nil)

// ParsedPage is a mock implementation of scpscrape.ParsedPage.
type ParsedPage struct {
	BlocksFn    func() []scpscrape.ContentBlock
	MediaURLsFn func(pageURL string, num int) []string
	TagsFn      func() []string
}

func (p *ParsedPage) Blocks() []scpscrape.ContentBlock {
	return p.BlocksFn()
}

func (p *ParsedPage) MediaURLs(pageURL string, num int) []string {
	return p.MediaURLsFn(pageURL, num)
}

func (p *ParsedPage) Tags() []string {
	return p.TagsFn()
}
