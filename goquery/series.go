package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Suixin04/scp-scraper"
)

// nameSeparator splits a listing entry into identifier and name.
const nameSeparator = " - "

// reNameSuffix strips trailing decorative punctuation from a line-scan
// match (interpunct-delimited rating widgets and the like).
var reNameSuffix = regexp.MustCompile(`[·•].*$`)

// SeriesName extracts the human-readable name for an item from its series
// listing page HTML. It scans links whose target contains the zero-padded
// identifier token for a separator-delimited name, then falls back to a
// full-text line scan with a cleanup pass. An empty string means the
// listing does not name the item.
func SeriesName(html string, num int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	idToken := fmt.Sprintf("scp-%03d", num)

	var name string
	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if !strings.Contains(link.AttrOr("href", ""), idToken) {
			return true
		}
		text := strings.TrimSpace(link.Text())
		if _, after, ok := strings.Cut(text, nameSeparator); ok {
			name = strings.TrimSpace(after)
			return false
		}
		return true
	})
	if name != "" {
		return name
	}

	canonical := scpscrape.FormatID(num)
	for _, line := range strings.Split(doc.Text(), "\n") {
		if !strings.Contains(line, canonical) || !strings.Contains(line, nameSeparator) {
			continue
		}
		_, after, _ := strings.Cut(line, nameSeparator)
		after = strings.TrimSpace(reNameSuffix.ReplaceAllString(after, ""))
		if after != "" {
			return after
		}
	}

	return ""
}
