// Package goquery provides the goquery-based implementation of
// scpscrape.PageParser. It locates the wiki's main content region and
// exposes the three views the pipeline consumes from one parse: ordered
// content blocks, relevant media URLs, and descriptive tags.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Suixin04/scp-scraper"
)

// contentRegionSelector addresses the wiki's main content container.
const contentRegionSelector = "div#page-content"

// Ensure Parser implements scpscrape.PageParser at compile time.
var _ scpscrape.PageParser = (*Parser)(nil)

// Parser parses raw wiki HTML into a Page.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html and locates the main content region. It returns an
// ENOTFOUND error when the region is absent.
func (p *Parser) Parse(html string) (scpscrape.ParsedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scpscrape.Errorf(scpscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	content := doc.Find(contentRegionSelector).First()
	if content.Length() == 0 {
		return nil, scpscrape.Errorf(scpscrape.ENOTFOUND, "page content not found")
	}

	return &Page{doc: doc, content: content}, nil
}

// Ensure Page implements scpscrape.ParsedPage at compile time.
var _ scpscrape.ParsedPage = (*Page)(nil)

// Page is one parsed wiki page. The full document is kept alongside the
// content region because tags live in a container outside the region.
type Page struct {
	doc     *goquery.Document
	content *goquery.Selection
}

// blockSelector matches the elements that can carry field content. The wiki
// marks field boundaries with emphasis inside ordinary flow elements, so
// paragraphs alone are not enough.
const blockSelector = "p, div, blockquote"

// Blocks returns the content region's elements in document order as
// content blocks. A block's label is the text of its first emphasized
// sub-span, when present.
func (p *Page) Blocks() []scpscrape.ContentBlock {
	var blocks []scpscrape.ContentBlock
	p.content.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		block := scpscrape.ContentBlock{
			Text: strings.TrimSpace(sel.Text()),
		}
		if strong := sel.Find("strong").First(); strong.Length() > 0 {
			block.Label = strings.TrimSpace(strong.Text())
		}
		blocks = append(blocks, block)
	})
	return blocks
}
