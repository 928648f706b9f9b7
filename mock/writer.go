package mock

import (
	"context"

	"github.com/Suixin04/scp-scraper"
)

var _ scpscrape.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of scpscrape.RecordWriter.
type RecordWriter struct {
	WriteAllFn func(ctx context.Context, records map[string]scpscrape.Record) error
}

func (w *RecordWriter) WriteAll(ctx context.Context, records map[string]scpscrape.Record) error {
	return w.WriteAllFn(ctx, records)
}
