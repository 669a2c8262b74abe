package parser

import (
	"strings"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// Column convention of the coaching template, relative to its header row.
const (
	TemplateColSection   = 0
	TemplateColCriterion = 1
	TemplateColScore     = 2
	TemplateColAverage   = 3
)

// legacyTemplateHeader is the exact three-column header of the oldest
// coaching template exports.
var legacyTemplateHeader = []string{"sections", "expectations", "score"}

// ClassifyFormat decides which layout the grid uses. Template detection
// always wins over the data-export check: a template document may
// incidentally carry a category name somewhere a naive scan would catch.
func ClassifyFormat(grid models.Grid, loc models.HeaderLocation) models.Format {
	if loc.RowIndex >= 0 {
		return models.FormatCoachingTemplate
	}
	if len(grid) == 0 {
		return models.FormatUnknown
	}
	if isLegacyTemplate(grid[0]) {
		return models.FormatCoachingTemplate
	}
	if hasCategoryHeader(grid[0]) {
		return models.FormatDataExport
	}
	return models.FormatUnknown
}

// isLegacyTemplate reports whether the row carries every legacy header
// cell as an exact value.
func isLegacyTemplate(row []string) bool {
	for _, want := range legacyTemplateHeader {
		found := false
		for _, cell := range row {
			if strings.EqualFold(strings.TrimSpace(cell), want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// hasCategoryHeader reports whether any header cell names a scoring
// category as a case-insensitive substring.
func hasCategoryHeader(row []string) bool {
	for _, cell := range row {
		lower := strings.ToLower(cell)
		for _, cat := range models.Categories {
			if strings.Contains(lower, strings.ToLower(cat)) {
				return true
			}
		}
	}
	return false
}
