// Package fs provides file-based persistence for the assembled record
// collection.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Suixin04/scp-scraper"
)

// Ensure Writer implements scpscrape.RecordWriter at compile time.
var _ scpscrape.RecordWriter = (*Writer)(nil)

// Writer persists the record collection as one indented JSON document
// mapping identifier strings to records. The write is atomic: content goes
// to a temporary file in the target directory first and is renamed into
// place, so a crash mid-write never leaves a truncated database behind.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteAll writes the full record collection. Non-ASCII content is
// preserved verbatim.
func (w *Writer) WriteAll(ctx context.Context, records map[string]scpscrape.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), w.path)
}
