package goquery_test

import (
	"testing"

	"github.com/Suixin04/scp-scraper"
	"github.com/Suixin04/scp-scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_missing_content_region(t *testing.T) {
	t.Parallel()

	parser := goquery.NewParser()

	_, err := parser.Parse(`<html><body><div id="sidebar">nothing here</div></body></html>`)

	require.Error(t, err)
	assert.Equal(t, scpscrape.ENOTFOUND, scpscrape.ErrorCode(err))
	assert.Equal(t, "page content not found", scpscrape.ErrorMessage(err))
}

func TestParser_Parse_finds_content_region(t *testing.T) {
	t.Parallel()

	parser := goquery.NewParser()

	page, err := parser.Parse(`<html><body><div id="page-content"><p>content</p></div></body></html>`)

	require.NoError(t, err)
	assert.NotNil(t, page)
}

func TestPage_Blocks_ordered_with_labels(t *testing.T) {
	t.Parallel()

	html := `<html><body><div id="page-content">
		<p><strong>项目编号:</strong> SCP-040</p>
		<p><strong>项目等级:</strong> Euclid</p>
		<p>continuation text without a label</p>
		<blockquote>quoted addendum text</blockquote>
	</div></body></html>`

	parser := goquery.NewParser()
	page, err := parser.Parse(html)
	require.NoError(t, err)

	blocks := page.Blocks()

	require.GreaterOrEqual(t, len(blocks), 4)
	assert.Equal(t, "项目编号:", blocks[0].Label)
	assert.Equal(t, "项目编号: SCP-040", blocks[0].Text)
	assert.Equal(t, "项目等级:", blocks[1].Label)
	assert.Empty(t, blocks[2].Label)
	assert.Equal(t, "continuation text without a label", blocks[2].Text)
}

func TestPage_Blocks_empty_region(t *testing.T) {
	t.Parallel()

	parser := goquery.NewParser()
	page, err := parser.Parse(`<html><body><div id="page-content"></div></body></html>`)
	require.NoError(t, err)

	assert.Empty(t, page.Blocks())
}
