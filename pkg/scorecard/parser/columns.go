package parser

import (
	"strings"
	"unicode"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// acceptedSpelling pairs a canonical field with the header variants that
// map to it. Variants are already normalized and are matched by exact
// equality against normalized header cells.
type acceptedSpelling struct {
	field    string
	variants []string
}

// acceptedSpellings is walked in order; within a field the first variant
// that matches an unclaimed header claims that column.
var acceptedSpellings = []acceptedSpelling{
	{models.FieldIdentifier, []string{
		"call id", "call identifier", "call ref", "recording id", "call name", "call", "id",
	}},
	{models.FieldDate, []string{
		"call date", "date", "date of call", "call time", "timestamp",
	}},
	{models.FieldDuration, []string{
		"call duration", "duration", "call length", "length", "talk duration",
	}},
	{models.CategoryOpening, []string{
		"opening", "opening score", "intro", "introduction",
	}},
	{models.CategoryObjections, []string{
		"objection handling", "objection handling score", "objections", "objection", "handling objections",
	}},
	{models.CategoryQualification, []string{
		"qualification", "qualification score", "qualifying", "discovery",
	}},
	{models.CategoryTone, []string{
		"tone & energy", "tone and energy", "tone energy", "tone", "energy",
	}},
	{models.CategoryAssertiveness, []string{
		"assertiveness & control", "assertiveness and control", "assertiveness control", "assertiveness",
	}},
	{models.CategoryAcumen, []string{
		"business acumen & relevance", "business acumen and relevance", "business acumen relevance",
		"business acumen", "acumen", "relevance",
	}},
	{models.CategoryClosing, []string{
		"closing", "closing score", "close", "wrap up",
	}},
	{models.CategoryTalkTime, []string{
		"talk time", "talk time score", "talk ratio", "talk listen ratio", "talk/listen ratio",
	}},
	{models.FieldNotes, []string{
		"manager notes", "notes", "coaching notes", "comments", "feedback",
	}},
}

// MapColumns resolves header cells to canonical fields. Every canonical
// key appears in Fields; keys that found no column keep an empty header
// text and stay absent from Columns. A header claims at most one field.
func MapColumns(headers []string) models.ColumnMapping {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	mapping := models.ColumnMapping{
		Fields:  make(map[string]string, len(acceptedSpellings)),
		Columns: make(map[string]int, len(acceptedSpellings)),
	}
	claimed := make(map[int]bool, len(headers))

	for _, spelling := range acceptedSpellings {
		mapping.Fields[spelling.field] = ""
		for _, variant := range spelling.variants {
			col, ok := findHeader(normalized, claimed, variant)
			if !ok {
				continue
			}
			mapping.Fields[spelling.field] = headers[col]
			mapping.Columns[spelling.field] = col
			claimed[col] = true
			break
		}
	}
	return mapping
}

// findHeader returns the first unclaimed column whose normalized header
// equals the variant.
func findHeader(normalized []string, claimed map[int]bool, variant string) (int, bool) {
	for i, h := range normalized {
		if !claimed[i] && h == variant {
			return i, true
		}
	}
	return -1, false
}

// normalizeHeader lowers, trims and collapses runs of underscores,
// hyphens and whitespace into single spaces so spelling variants of the
// same header compare equal.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	var b strings.Builder
	pendingSpace := false
	for _, r := range h {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// sectionFor matches an explicit section-name cell against the category
// spellings. Used by the template walk before falling back to the
// criterion classifier.
func sectionFor(cell string) (string, bool) {
	norm := normalizeHeader(cell)
	if norm == "" {
		return "", false
	}
	for _, spelling := range acceptedSpellings {
		if !models.IsCategory(spelling.field) {
			continue
		}
		for _, variant := range spelling.variants {
			if norm == variant {
				return spelling.field, true
			}
		}
	}
	return "", false
}
