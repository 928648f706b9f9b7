package scpscrape

import (
	"fmt"
	"strings"
)

// Canonical field names. Every raw label with a known synonym normalizes to
// one of these; labels outside the vocabulary degrade to a slugified form
// that cannot collide with the canonical spellings.
const (
	FieldID          = "id"
	FieldClass       = "class"
	FieldContainment = "containment"
	FieldDescription = "description"
	FieldAddendum    = "addendum"

	FieldExperimentLog = "experiment_log"
	FieldInterviewLog  = "interview_log"
	FieldIncidentLog   = "incident_log"
	FieldUpdateLog     = "update_log"
	FieldHistory       = "history"
	FieldDiscovery     = "discovery"
	FieldNotes         = "notes"
	FieldRecordStart   = "record_start"
	FieldRecordEnd     = "record_end"

	FieldSeries  = "series"
	FieldName    = "name"
	FieldImages  = "images"
	FieldTags    = "tags"
	FieldError   = "error"
	FieldWarning = "warning"

	// FieldValidationIssues holds the ordered list of human-readable
	// validation problems. Purely informational: its presence never blocks
	// downstream consumption of the record.
	FieldValidationIssues = "validation_issues"
)

// Record is a single assembled item entry. Values are plain strings, small
// ordered string slices (images, tags, validation issues), or an integer
// (series number). A closed struct would misrepresent the open key space
// that key normalization can produce for unknown labels, so the mapping
// stays dynamic.
type Record map[string]any

// String returns the field's value if it is present and a string.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// HasError reports whether the record carries a top-level error field.
// A record without one counts as a successful scrape.
func (r Record) HasError() bool {
	_, ok := r[FieldError]
	return ok
}

// requiredFields must be present and non-empty after assembly.
var requiredFields = []string{FieldID}

// recommendedFields are expected on a well-formed entry; their absence is
// annotated but never fatal.
var recommendedFields = []string{FieldClass, FieldContainment, FieldDescription}

// ValidateRecord checks required and recommended fields and annotates the
// record with validation_issues when any are missing or empty. It never
// removes or alters other fields and never fails; the input record is
// returned for chaining.
func ValidateRecord(r Record) Record {
	var issues []string

	for _, field := range requiredFields {
		if v, ok := r[field]; !ok || v == "" {
			issues = append(issues, fmt.Sprintf("missing required field: %s", field))
		}
	}

	var missing []string
	for _, field := range recommendedFields {
		if v, ok := r[field]; !ok || v == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		issues = append(issues, fmt.Sprintf("missing recommended fields: %s", strings.Join(missing, ", ")))
	}

	if len(issues) > 0 {
		r[FieldValidationIssues] = issues
	}
	return r
}
