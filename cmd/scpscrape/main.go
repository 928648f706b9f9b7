package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Suixin04/scp-scraper"
	"github.com/Suixin04/scp-scraper/crawl"
	"github.com/Suixin04/scp-scraper/fs"
	scpgoquery "github.com/Suixin04/scp-scraper/goquery"
	scphttp "github.com/Suixin04/scp-scraper/http"
	scpslog "github.com/Suixin04/scp-scraper/slog"
	"github.com/Suixin04/scp-scraper/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Start       int           `default:"1" help:"First item number in the range (inclusive)"`
	End         int           `default:"9999" help:"Last item number in the range (inclusive)"`
	Concurrency int           `short:"c" default:"8" help:"Concurrent scrape limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per request"`
	RPS         float64       `default:"0" help:"Requests per second limit (0 disables throttling)"`
	Out         string        `short:"o" default:"scp_database_cn.json" help:"Output JSON database path"`
	DB          string        `optional:"" help:"Optional SQLite archive path"`
	Verbose     bool          `short:"v" help:"Log each fetch and series resolution"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scpscrape"),
		kong.Description("Scrape SCP wiki entries into a structured record database"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Start < 1 || cli.End < cli.Start {
		return scpscrape.Errorf(scpscrape.EINVALID, "invalid range %d..%d", cli.Start, cli.End)
	}

	// Wire dependencies. The connection pool must cover the workers plus
	// the occasional concurrent series-page fetch.
	var fetcher scpscrape.Fetcher = scphttp.NewFetcher(
		scphttp.WithTimeout(cli.Timeout),
		scphttp.WithPoolSize(cli.Concurrency+4),
	)
	var series scpscrape.SeriesResolver = crawl.NewSeriesResolver(fetcher)

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = scpslog.NewLoggingFetcher(fetcher, logger)
		series = scpslog.NewLoggingSeriesResolver(series, logger)
	}

	crawler := &crawl.Crawler{
		Fetcher:     fetcher,
		Parser:      scpgoquery.NewParser(),
		Series:      series,
		Limiter:     crawl.NewLimiter(cli.RPS),
		Concurrency: cli.Concurrency,
	}

	writers := []scpscrape.RecordWriter{fs.NewWriter(cli.Out)}

	result := crawler.Run(ctx, cli.Start, cli.End, progressPrinter(stdout))

	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		writers = append(writers, sqlite.NewRecordService(db, result.RunID))
	}

	// Per-item failures never fail the batch; only a failed write does.
	for _, writer := range writers {
		if err := writer.WriteAll(ctx, result.Records); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}

	printSummary(stdout, result)
	return nil
}

// progressPrinter returns a progress callback printing one line per
// completed identifier.
func progressPrinter(stdout io.Writer) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(stdout, "(%d/%d) ok: %s\n", event.Completed, event.Total, scpscrape.FormatID(event.Num))
		case crawl.ProgressFailed:
			fmt.Fprintf(stdout, "(%d/%d) failed: %s - %v\n", event.Completed, event.Total, scpscrape.FormatID(event.Num), event.Error)
		}
	}
}

// printSummary prints the final batch summary.
func printSummary(stdout io.Writer, result *crawl.Result) {
	fmt.Fprintf(stdout, "\n=== crawl finished ===\n")
	fmt.Fprintf(stdout, "run: %s\n", result.RunID)
	fmt.Fprintf(stdout, "elapsed: %.2fs\n", result.Elapsed.Seconds())
	fmt.Fprintf(stdout, "succeeded: %d\n", len(result.Records))
	fmt.Fprintf(stdout, "failed: %d\n", len(result.FailedIDs))
	if len(result.FailedIDs) > 0 {
		fmt.Fprintf(stdout, "failed ids: %v\n", result.FailedIDs)
	}
}
