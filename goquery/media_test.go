package goquery_test

import (
	"testing"

	"github.com/Suixin04/scp-scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePage(t *testing.T, html string) *goquery.Page {
	t.Helper()
	page, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return page.(*goquery.Page)
}

func TestPage_MediaURLs_resolves_relative_url_with_relevant_alt(t *testing.T) {
	t.Parallel()

	page := parsePage(t, `<html><body><div id="page-content">
		<img src="/local/pic.png" alt="SCP item">
	</div></body></html>`)

	urls := page.MediaURLs("http://host/scp-007", 7)

	assert.Equal(t, []string{"http://host/local/pic.png"}, urls)
}

func TestPage_MediaURLs_excludes_irrelevant_images(t *testing.T) {
	t.Parallel()

	page := parsePage(t, `<html><body><div id="page-content">
		<img src="http://host/banner/logo.png" alt="site banner" title="banner">
	</div></body></html>`)

	urls := page.MediaURLs("http://host/page-about", 7)

	assert.Empty(t, urls)
}

func TestPage_MediaURLs_matches_zero_padded_identifier_in_url(t *testing.T) {
	t.Parallel()

	page := parsePage(t, `<html><body><div id="page-content">
		<img src="http://cdn.example.com/scp-040-photo.jpg" alt="" title="">
	</div></body></html>`)

	urls := page.MediaURLs("http://host/item", 40)

	assert.Equal(t, []string{"http://cdn.example.com/scp-040-photo.jpg"}, urls)
}

func TestPage_MediaURLs_collects_lazy_load_and_srcset_candidates(t *testing.T) {
	t.Parallel()

	page := parsePage(t, `<html><body><div id="page-content">
		<img data-src="/scp-040/a.jpg" srcset="/scp-040/b.jpg 1x, /scp-040/c.jpg 2x" alt="">
	</div></body></html>`)

	urls := page.MediaURLs("http://host/scp-040", 40)

	assert.Equal(t, []string{
		"http://host/scp-040/a.jpg",
		"http://host/scp-040/b.jpg",
		"http://host/scp-040/c.jpg",
	}, urls)
}

func TestPage_MediaURLs_filters_by_extension_and_scheme(t *testing.T) {
	t.Parallel()

	page := parsePage(t, `<html><body><div id="page-content">
		<img src="http://host/scp-040/document.pdf" alt="scp">
		<img src="ftp://host/scp-040/pic.png" alt="scp">
		<img src="http://host/scp-040/PIC.PNG" alt="scp">
	</div></body></html>`)

	urls := page.MediaURLs("http://host/scp-040", 40)

	assert.Equal(t, []string{"http://host/scp-040/PIC.PNG"}, urls)
}

func TestPage_MediaURLs_deduplicates_globally_preserving_order(t *testing.T) {
	t.Parallel()

	page := parsePage(t, `<html><body><div id="page-content">
		<img src="/scp-040/a.jpg" alt="">
		<img src="/scp-040/a.jpg" data-src="/scp-040/b.jpg" alt="">
	</div></body></html>`)

	urls := page.MediaURLs("http://host/scp-040", 40)

	assert.Equal(t, []string{
		"http://host/scp-040/a.jpg",
		"http://host/scp-040/b.jpg",
	}, urls)
}

func TestPage_MediaURLs_ignores_images_outside_content_region(t *testing.T) {
	t.Parallel()

	page := parsePage(t, `<html><body>
		<img src="/scp-040/outside.jpg" alt="scp">
		<div id="page-content"><p>no images here</p></div>
	</body></html>`)

	urls := page.MediaURLs("http://host/scp-040", 40)

	assert.Empty(t, urls)
}
