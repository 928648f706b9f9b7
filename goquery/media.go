package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imageExtensions is the accepted set of media file types, matched
// case-insensitively against the resolved URL path.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// lazyLoadAttrs are the reference attributes lazy-loading themes move the
// real image URL into.
var lazyLoadAttrs = []string{"data-src", "data-image"}

// topicalToken marks a URL, alt text, or title as referencing the subject
// matter generically.
const topicalToken = "scp"

// MediaURLs collects every candidate image URL inside the content region,
// resolves each against pageURL, and returns the relevant absolute URLs in
// first-seen order with exact-string deduplication.
func (p *Page) MediaURLs(pageURL string, num int) []string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	idToken := fmt.Sprintf("scp-%03d", num)

	var ordered []string
	seen := make(map[string]struct{})

	p.content.Find("img").Each(func(_ int, img *goquery.Selection) {
		alt := img.AttrOr("alt", "")
		title := img.AttrOr("title", "")

		for _, candidate := range imageCandidates(img) {
			resolved := resolveImageURL(base, candidate)
			if resolved == "" {
				continue
			}
			if !isRelevantImage(resolved, alt, title, idToken) {
				continue
			}
			if _, ok := seen[resolved]; ok {
				continue
			}
			seen[resolved] = struct{}{}
			ordered = append(ordered, resolved)
		}
	})

	return ordered
}

// imageCandidates collects the possible image URLs carried by one img
// element: the primary src, the lazy-load attributes, and each URL part of
// the responsive srcset ("url descriptor" pairs, comma-separated).
// Candidates keep attribute order so first-seen order is deterministic.
func imageCandidates(img *goquery.Selection) []string {
	var candidates []string

	if src := strings.TrimSpace(img.AttrOr("src", "")); src != "" {
		candidates = append(candidates, src)
	}
	for _, attr := range lazyLoadAttrs {
		if val := strings.TrimSpace(img.AttrOr(attr, "")); val != "" {
			candidates = append(candidates, val)
		}
	}
	if srcset := strings.TrimSpace(img.AttrOr("srcset", "")); srcset != "" {
		for _, part := range strings.Split(srcset, ",") {
			fields := strings.Fields(strings.TrimSpace(part))
			if len(fields) > 0 {
				candidates = append(candidates, fields[0])
			}
		}
	}

	return candidates
}

// resolveImageURL resolves a candidate against the page URL and returns the
// absolute form, or empty when the result is not an http(s) URL ending in a
// recognized image extension.
func resolveImageURL(base *url.URL, candidate string) string {
	ref, err := url.Parse(candidate)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref).String()

	if !strings.HasPrefix(resolved, "http://") && !strings.HasPrefix(resolved, "https://") {
		return ""
	}

	lower := strings.ToLower(resolved)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return resolved
		}
	}
	return ""
}

// isRelevantImage reports whether an image references the item being
// processed: the URL contains the zero-padded identifier token or the
// generic topical token, or the accessible text or title does. Substring
// checks only, case-insensitive.
func isRelevantImage(imageURL, alt, title, idToken string) bool {
	lower := strings.ToLower(imageURL)
	if strings.Contains(lower, idToken) {
		return true
	}
	if strings.Contains(lower, topicalToken) {
		return true
	}
	if alt != "" && strings.Contains(strings.ToLower(alt), topicalToken) {
		return true
	}
	if title != "" && strings.Contains(strings.ToLower(title), topicalToken) {
		return true
	}
	return false
}
