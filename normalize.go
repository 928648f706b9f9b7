package scpscrape

import (
	"regexp"
	"strings"
)

// fieldSynonyms maps raw labels, case-folded, to canonical field names. The
// wiki mixes simplified and traditional Chinese with English spellings, so
// every canonical field carries at least one synonym per script it appears
// in. Lookups are exact after folding; there is no fuzzy matching, so a
// label with a stray space degrades to the slug fallback by design.
var fieldSynonyms = map[string]string{
	// 项目编号
	"项目编号":        FieldID,
	"項目編號":        FieldID,
	"编号":          FieldID,
	"編號":          FieldID,
	"scp编号":       FieldID,
	"scp編號":       FieldID,
	"item #":      FieldID,
	"item number": FieldID,

	// 项目等级
	"项目等级":           FieldClass,
	"項目等級":           FieldClass,
	"等级":             FieldClass,
	"等級":             FieldClass,
	"对象等级":           FieldClass,
	"對象等級":           FieldClass,
	"object class":   FieldClass,
	"classification": FieldClass,

	// 特殊收容措施
	"特殊收容措施": FieldContainment,
	"特殊收容程序": FieldContainment,
	"收容措施":   FieldContainment,
	"收容程序":   FieldContainment,
	"收容":     FieldContainment,
	"special containment procedures": FieldContainment,
	"containment":                    FieldContainment,
	"containment procedures":         FieldContainment,

	// 描述
	"描述":          FieldDescription,
	"項目描述":        FieldDescription,
	"项目描述":        FieldDescription,
	"说明":          FieldDescription,
	"詳述":          FieldDescription,
	"description": FieldDescription,

	// 附录和记录类
	"附录":   FieldAddendum,
	"附錄":   FieldAddendum,
	"实验记录": FieldExperimentLog,
	"實驗記錄": FieldExperimentLog,
	"访谈记录": FieldInterviewLog,
	"訪談記錄": FieldInterviewLog,
	"事件记录": FieldIncidentLog,
	"事件記錄": FieldIncidentLog,
	"更新记录": FieldUpdateLog,
	"更新記錄": FieldUpdateLog,
	"历史":   FieldHistory,
	"歷史":   FieldHistory,
	"发现":   FieldDiscovery,
	"發現":   FieldDiscovery,
	"註":    FieldNotes,
	"注":    FieldNotes,
	"备注":   FieldNotes,
	"記錄開始": FieldRecordStart,
	"记录开始": FieldRecordStart,
	"記錄結束": FieldRecordEnd,
	"记录结束": FieldRecordEnd,
}

var (
	// reRedact matches the known redaction-marker spellings.
	reRedact = regexp.MustCompile(`(?i)\[数据删除\]|\[资料删除\]|\[已编辑\]|\[删除\]|\[REDACTED\]|\[DATA EXPUNGED\]`)
	// reWhitespace matches runs of whitespace, newlines included.
	reWhitespace = regexp.MustCompile(`\s+`)
	// reLeadingColon matches one leading separator in either script.
	reLeadingColon = regexp.MustCompile(`^[：:]\s*`)
	// reSlug matches everything outside the slug keep-set: ASCII
	// alphanumerics, underscore, and CJK ideographs.
	reSlug = regexp.MustCompile(`[^0-9A-Za-z_\x{4e00}-\x{9fff}]`)
)

// RedactionToken is the canonical replacement for all redaction markers.
const RedactionToken = "[REDACTED]"

// NormalizeKey maps a raw field label to its canonical field name. The label
// is trimmed, stripped of trailing colons (fullwidth or ASCII), and matched
// case-insensitively against the synonym table. Labels without a synonym
// degrade to a lowercased slug with every character outside the keep-set
// replaced by an underscore; the slug can never collide with a canonical
// name because canonical spellings survive slugging unchanged only for
// labels that would have matched the table anyway. An empty label yields an
// empty string, which callers treat as "no field detected".
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.TrimRight(key, "：:")
	if key == "" {
		return ""
	}

	if canonical, ok := fieldSynonyms[strings.ToLower(key)]; ok {
		return canonical
	}

	return strings.ToLower(reSlug.ReplaceAllString(key, "_"))
}

// SanitizeValue cleans a raw field value: redaction markers are unified to
// RedactionToken, whitespace runs collapse to a single space, and one
// leading colon separator is stripped. The result is trimmed. SanitizeValue
// is idempotent.
func SanitizeValue(value string) string {
	if value == "" {
		return ""
	}

	value = reRedact.ReplaceAllString(value, RedactionToken)
	value = reWhitespace.ReplaceAllString(value, " ")
	value = reLeadingColon.ReplaceAllString(value, "")

	return strings.TrimSpace(value)
}

// sentenceTerminator splits long free-text fields into sentences.
const sentenceTerminator = "。"

// minSentenceBytes is the shortest segment kept by DeduplicateContent;
// anything shorter is treated as noise rather than a sentence. Measured in
// bytes so a two-ideograph CJK sentence still counts as content.
const minSentenceBytes = 6

// DeduplicateContent removes repeated sentences from a long text field
// while preserving order. The text is split on the sentence terminator;
// segments are trimmed, dropped when shorter than minSentenceBytes or when
// an identical segment was already kept, and rejoined with one trailing
// terminator if anything survived. Dedup is exact-match only: paraphrased
// near-duplicates are not merged.
func DeduplicateContent(content string) string {
	if content == "" {
		return content
	}

	seen := make(map[string]struct{})
	var kept []string
	for _, segment := range strings.Split(content, sentenceTerminator) {
		segment = strings.TrimSpace(segment)
		if len(segment) < minSentenceBytes {
			continue
		}
		if _, ok := seen[segment]; ok {
			continue
		}
		seen[segment] = struct{}{}
		kept = append(kept, segment)
	}

	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, sentenceTerminator) + sentenceTerminator
}
