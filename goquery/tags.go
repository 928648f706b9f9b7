package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// tagContainerSelector addresses the dedicated tag container the wiki
// renders below the content region.
const tagContainerSelector = "div.page-tags"

// tagPathMarker identifies tag links when falling back to a content scan.
const tagPathMarker = "/tag/"

// administrativeTags are structural classification markers rather than
// descriptive tags: the item-type marker, the risk-class levels, and the
// disposition markers. Matched case-insensitively.
var administrativeTags = map[string]struct{}{
	"scp":            {},
	"safe":           {},
	"euclid":         {},
	"keter":          {},
	"thaumiel":       {},
	"apollyon":       {},
	"archon":         {},
	"neutralized":    {},
	"explained":      {},
	"decommissioned": {},
}

// Tags returns the page's descriptive tags in document order, deduplicated
// case-sensitively with administrative tags filtered out. The dedicated tag
// container is consulted first; when it is absent or empty, tag-path links
// inside the content region are scanned instead.
func (p *Page) Tags() []string {
	var tags []string
	seen := make(map[string]struct{})

	keep := func(text string) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		if _, ok := administrativeTags[strings.ToLower(text)]; ok {
			return
		}
		if _, ok := seen[text]; ok {
			return
		}
		seen[text] = struct{}{}
		tags = append(tags, text)
	}

	p.doc.Find(tagContainerSelector).First().Find("a").Each(func(_ int, link *goquery.Selection) {
		keep(link.Text())
	})

	if len(tags) == 0 {
		p.content.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
			if strings.Contains(link.AttrOr("href", ""), tagPathMarker) {
				keep(link.Text())
			}
		})
	}

	return tags
}
