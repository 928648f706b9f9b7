package scpscrape

import (
	"fmt"
	"regexp"
	"strings"
)

// ContentBlock is one ordered fragment of a document's main content region.
// Text is the block's full plain text; Label is the text of an embedded
// emphasized sub-span, interpreted as a field label, or empty when the
// block carries none.
type ContentBlock struct {
	Text  string
	Label string
}

// reIDFromURL locates the identifier segment of a page URL.
var reIDFromURL = regexp.MustCompile(`(?i)scp-(\d+)`)

// FormatID renders a numeric identifier in the canonical zero-padded form.
func FormatID(num int) string {
	return fmt.Sprintf("SCP-%03d", num)
}

// IDFromURL extracts a canonical identifier from a page URL, or returns an
// empty string when the URL carries no identifier segment.
func IDFromURL(url string) string {
	m := reIDFromURL.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	digits := m[1]
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	return "SCP-" + digits
}

// isNavigationBoundary reports whether a block opens the trailing
// navigation section (the «prev | next» footer links). Only the guillemet
// glyphs are treated as boundary markers; section names like 附录 are
// legitimate field labels and must not stop parsing. Known false negative:
// legitimate content that happens to start with a guillemet is truncated
// here.
func isNavigationBoundary(text string) bool {
	if !strings.ContainsAny(text, "«‹") {
		return false
	}
	return strings.HasPrefix(text, "«") || strings.HasPrefix(text, "‹")
}

// fieldCursor is the assembler's scan state: either no field is open, or a
// field is open with a raw label and an accumulating value. Flush is the
// only transition that writes into the record.
type fieldCursor struct {
	label string
	value strings.Builder
}

func (c *fieldCursor) open() bool {
	return c.label != ""
}

// start begins accumulating a new field from an emphasized label and the
// block text that followed it.
func (c *fieldCursor) start(label, initial string) {
	c.label = label
	c.value.Reset()
	c.value.WriteString(initial)
}

// append adds continuation text to the open field, separated by one space.
func (c *fieldCursor) append(text string) {
	if s := c.value.String(); s != "" && !strings.HasSuffix(s, " ") {
		c.value.WriteString(" ")
	}
	c.value.WriteString(text)
}

// flush normalizes and sanitizes the open field into the record, then
// closes the cursor. Fields whose key or value normalize to nothing are
// dropped.
func (c *fieldCursor) flush(into Record) {
	if !c.open() {
		return
	}
	key := NormalizeKey(c.label)
	value := SanitizeValue(c.value.String())
	if key != "" && value != "" {
		into[key] = value
	}
	c.label = ""
	c.value.Reset()
}

// AssembleRecord walks the ordered content blocks of one document and
// produces a flat record. Blocks are consumed left to right exactly once: an
// emphasized label flushes the open field and starts a new one with the
// remaining block text as its initial value; unlabeled blocks extend the
// open field; a navigation boundary stops the scan. Post-processing
// backfills the identifier (from the resolved page URL, then from num),
// deduplicates the long free-text fields, and flattens any legacy nested
// container into uniformly normalized top-level keys.
func AssembleRecord(blocks []ContentBlock, num int, pageURL string) Record {
	record := Record{}
	var cursor fieldCursor

	for _, block := range blocks {
		text := strings.TrimSpace(block.Text)
		if text == "" {
			continue
		}
		if isNavigationBoundary(text) {
			break
		}

		if label := strings.TrimSpace(block.Label); label != "" {
			cursor.flush(record)
			cursor.start(label, trimLabelPrefix(text, label))
			continue
		}

		if cursor.open() {
			cursor.append(text)
		}
	}
	cursor.flush(record)

	ensureID(record, num, pageURL)

	for _, field := range []string{FieldDescription, FieldContainment} {
		if s, ok := record[field].(string); ok {
			record[field] = DeduplicateContent(s)
		}
	}

	return flattenRecord(record)
}

// trimLabelPrefix removes the leading label from a block's text, leaving
// the field's initial value. The label renders at the start of the block,
// so the cut is by rune count rather than a literal prefix match.
func trimLabelPrefix(text, label string) string {
	runes := []rune(text)
	n := len([]rune(label))
	if n > len(runes) {
		return ""
	}
	return strings.TrimSpace(string(runes[n:]))
}

// ensureID guarantees a non-empty canonical identifier on the record.
func ensureID(record Record, num int, pageURL string) {
	if v, ok := record[FieldID]; ok {
		if s, isString := v.(string); !isString || s != "" {
			return
		}
	}
	if pageURL != "" {
		if id := IDFromURL(pageURL); id != "" {
			record[FieldID] = id
			return
		}
	}
	record[FieldID] = FormatID(num)
}

// legacyNestedField is the auxiliary-info container some older records
// carried; its entries are merged into the top level.
const legacyNestedField = "more_info"

// flattenRecord merges a legacy nested container into the top level without
// overwriting fields already present, then re-normalizes every key so the
// record's key set is uniform. NormalizeKey is idempotent on canonical
// keys, so already-flat records pass through unchanged.
func flattenRecord(record Record) Record {
	flat := Record{}

	if nested, ok := record[legacyNestedField].(map[string]any); ok {
		for key, value := range nested {
			if normalized := NormalizeKey(key); normalized != "" {
				flat[normalized] = value
			}
		}
	}

	for key, value := range record {
		if key == legacyNestedField {
			continue
		}
		if normalized := NormalizeKey(key); normalized != "" {
			flat[normalized] = value
		}
	}

	return flat
}
