package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/Suixin04/scp-scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_rejects_invalid_range(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"start below one", []string{"--start", "0", "--end", "10"}},
		{"end before start", []string{"--start", "10", "--end", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			err := NewMain().Run(context.Background(), tt.args, &stdout, &stderr)
			require.Error(t, err)
			assert.Equal(t, scpscrape.EINVALID, scpscrape.ErrorCode(err))
		})
	}
}

func TestMain_Run_rejects_unknown_flag(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), []string{"--bogus"}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestMain_Run_help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), []string{"--help"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "scpscrape")
}
