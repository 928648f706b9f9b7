// Package crawl provides the batch orchestration for the extraction
// pipeline: a bounded worker pool dispatches one retrieval+parse task per
// identifier, drains results as they complete, and aggregates successes and
// failures into a run result. Tasks are independent and share no mutable
// state beyond the series-page cache and the fetcher's connection pool.
package crawl

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Suixin04/scp-scraper"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Crawler drives the pipeline across a range of identifiers.
type Crawler struct {
	Fetcher     scpscrape.Fetcher
	Parser      scpscrape.PageParser
	Series      scpscrape.SeriesResolver
	Limiter     *Limiter
	Concurrency int
}

// Result holds the outcome of one batch run.
type Result struct {
	RunID     string
	Records   map[string]scpscrape.Record
	FailedIDs []int
	Elapsed   time.Duration
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Num       int
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// taskResult ties one identifier to its scraped record, or to the panic
// that killed its task.
type taskResult struct {
	num    int
	record scpscrape.Record
	err    error
}

// Run scrapes every identifier in the inclusive range [start, end] with
// bounded concurrency. A record is successful iff it carries no error
// field; failed identifiers are collected rather than aborting the batch,
// and an unexpected task failure is attributed to its identifier the same
// way. Results are drained as tasks complete, not in identifier order.
func (c *Crawler) Run(ctx context.Context, start, end int, progress ProgressFunc) *Result {
	began := time.Now()

	result := &Result{
		RunID:   uuid.NewString(),
		Records: make(map[string]scpscrape.Record),
	}
	if end < start {
		result.Elapsed = time.Since(began)
		return result
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	total := end - start + 1
	resultCh := make(chan taskResult, total)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for num := start; num <= end; num++ {
			num := num
			g.Go(func() error {
				record, err := c.processID(gctx, num)
				resultCh <- taskResult{num: num, record: record, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for task := range resultCh {
		completed++

		switch {
		case task.err != nil:
			result.FailedIDs = append(result.FailedIDs, task.num)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Num: task.num, Completed: completed, Total: total, Error: task.err})
			}
		case task.record.HasError():
			result.FailedIDs = append(result.FailedIDs, task.num)
			if progress != nil {
				progress(ProgressEvent{
					Type: ProgressFailed, Num: task.num, Completed: completed, Total: total,
					Error: fmt.Errorf("%s", task.record.String(scpscrape.FieldError)),
				})
			}
		default:
			result.Records[strconv.Itoa(task.num)] = task.record
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, Num: task.num, Completed: completed, Total: total})
			}
		}
	}

	sort.Ints(result.FailedIDs)
	result.Elapsed = time.Since(began)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return result
}

// processID runs the full pipeline for one identifier. The two known error
// paths (request failure, missing content region) come back as an error
// field on the record; anything unexpected is caught at this boundary and
// returned as an error instead of taking down the batch.
func (c *Crawler) processID(ctx context.Context, num int) (record scpscrape.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = scpscrape.Errorf(scpscrape.EINTERNAL, "unhandled failure for %s: %v", scpscrape.FormatID(num), r)
		}
	}()

	record = scpscrape.Record{
		// Fallback identifier; the assembler overrides it from the page.
		scpscrape.FieldID: scpscrape.FormatID(num),
	}

	series, name := c.Series.Resolve(ctx, num)
	record[scpscrape.FieldSeries] = series
	if name != "" {
		record[scpscrape.FieldName] = name
	}

	if err := c.Limiter.Wait(ctx); err != nil {
		record[scpscrape.FieldError] = fmt.Sprintf("request failed: %v", err)
		return record, nil
	}

	html, finalURL, err := c.Fetcher.Fetch(ctx, scpscrape.PageURL(num))
	if err != nil {
		record[scpscrape.FieldError] = fmt.Sprintf("request failed: %v", err)
		return record, nil
	}

	page, err := c.Parser.Parse(html)
	if err != nil {
		record[scpscrape.FieldError] = scpscrape.ErrorMessage(err)
		return record, nil
	}

	assembled := scpscrape.AssembleRecord(page.Blocks(), num, finalURL)
	degenerate := len(assembled) <= 1 // nothing beyond the backfilled id
	for key, value := range assembled {
		record[key] = value
	}

	if images := page.MediaURLs(finalURL, num); len(images) > 0 {
		record[scpscrape.FieldImages] = images
	}
	if tags := page.Tags(); len(tags) > 0 {
		record[scpscrape.FieldTags] = tags
	}

	if degenerate {
		record[scpscrape.FieldWarning] = "no standard fields extracted"
	}

	return scpscrape.ValidateRecord(record), nil
}
