package scpscrape_test

import (
	"testing"

	"github.com/Suixin04/scp-scraper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := scpscrape.Errorf(scpscrape.ENOTFOUND, "record %q not found", "test")

	assert.Equal(t, scpscrape.ENOTFOUND, scpscrape.ErrorCode(err))
	assert.Equal(t, "record \"test\" not found", scpscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scpscrape.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scpscrape.ErrorMessage(nil))
}

func TestPageURL_zero_pads_to_three_digits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://scp-wiki-cn.wikidot.com/scp-007", scpscrape.PageURL(7))
	assert.Equal(t, "http://scp-wiki-cn.wikidot.com/scp-1234", scpscrape.PageURL(1234))
}
