package scpscrape

import "fmt"

// PageBaseURL is the prefix every item page hangs off.
const PageBaseURL = "http://scp-wiki-cn.wikidot.com/scp-"

// PageURL returns the item page URL for a numeric identifier.
func PageURL(num int) string {
	return fmt.Sprintf("%s%03d", PageBaseURL, num)
}
