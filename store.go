package scpscrape

import "context"

// RecordWriter persists the assembled record collection, keyed by the
// identifier's decimal string form. Writers are invoked once at batch
// completion.
type RecordWriter interface {
	WriteAll(ctx context.Context, records map[string]Record) error
}
