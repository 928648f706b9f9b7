package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Suixin04/scp-scraper"
	"github.com/cespare/xxhash/v2"
)

// Ensure RecordService implements scpscrape.RecordWriter at compile time.
var _ scpscrape.RecordWriter = (*RecordService)(nil)

// RecordService archives scraped records, one row per identifier, with
// upsert semantics so re-running a range refreshes existing rows. Each row
// carries a content hash for change detection and the id of the run that
// produced it.
type RecordService struct {
	db    *DB
	runID string
}

// NewRecordService creates a RecordService writing rows tagged with runID.
func NewRecordService(db *DB, runID string) *RecordService {
	return &RecordService{db: db, runID: runID}
}

// WriteAll upserts the full record collection in ascending identifier
// order.
func (s *RecordService) WriteAll(ctx context.Context, records map[string]scpscrape.Record) error {
	nums := make([]int, 0, len(records))
	for key := range records {
		num, err := strconv.Atoi(key)
		if err != nil {
			return scpscrape.Errorf(scpscrape.EINVALID, "record key %q is not numeric", key)
		}
		nums = append(nums, num)
	}
	sort.Ints(nums)

	now := time.Now().UTC().Format(time.RFC3339)

	for _, num := range nums {
		record := records[strconv.Itoa(num)]

		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record %d: %w", num, err)
		}

		series, _ := record[scpscrape.FieldSeries].(int)

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO records (num, item_id, series, name, payload, content_hash, run_id, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(num) DO UPDATE SET
				item_id = excluded.item_id,
				series = excluded.series,
				name = excluded.name,
				payload = excluded.payload,
				content_hash = excluded.content_hash,
				run_id = excluded.run_id,
				fetched_at = excluded.fetched_at
		`,
			num,
			record.String(scpscrape.FieldID),
			series,
			record.String(scpscrape.FieldName),
			string(payload),
			ComputeHash(string(payload)),
			s.runID,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to archive record %d: %w", num, err)
		}
	}

	return nil
}

// FindRecordByNum retrieves an archived record by its numeric identifier.
// Returns ENOTFOUND if no row exists.
func (s *RecordService) FindRecordByNum(ctx context.Context, num int) (scpscrape.Record, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM records WHERE num = ?`, num).Scan(&payload)
	if err != nil {
		return nil, scpscrape.Errorf(scpscrape.ENOTFOUND, "record %d not found", num)
	}

	var record scpscrape.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %d: %w", num, err)
	}
	return record, nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
