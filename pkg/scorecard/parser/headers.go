package parser

import (
	"strings"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// DefaultScanWindow is how many leading rows are searched for a template
// header row. Real coaching templates bury headers behind title and
// instruction rows, so the first row cannot be trusted.
const DefaultScanWindow = 30

// LocateHeaders scans the first scanWindow rows for a coaching-template
// header row. When nothing matches, RowIndex is -1 and row 0 is assumed
// to hold the headers.
func LocateHeaders(grid models.Grid, scanWindow int) models.HeaderLocation {
	if scanWindow <= 0 {
		scanWindow = DefaultScanWindow
	}
	limit := len(grid)
	if scanWindow < limit {
		limit = scanWindow
	}

	for i := 0; i < limit; i++ {
		if isTemplateHeader(grid[i]) {
			return models.HeaderLocation{
				RowIndex:  i,
				Tokens:    grid[i],
				DataStart: i + 1,
			}
		}
	}

	loc := models.HeaderLocation{RowIndex: -1, DataStart: 1}
	if len(grid) > 0 {
		loc.Tokens = grid[0]
	}
	return loc
}

// isTemplateHeader reports whether a row reads like the vertical template
// header: cells naming section, expectation and score, or the bare
// sections/score pair used by stripped-down exports.
func isTemplateHeader(row []string) bool {
	var hasSection, hasExpectation, hasScore, hasSections bool
	for _, cell := range row {
		v := strings.ToLower(strings.TrimSpace(cell))
		if v == "" {
			continue
		}
		if strings.Contains(v, "section") {
			hasSection = true
		}
		if strings.Contains(v, "expectation") {
			hasExpectation = true
		}
		if v == "score" {
			hasScore = true
		}
		if v == "sections" {
			hasSections = true
		}
	}
	if hasSection && hasExpectation && hasScore {
		return true
	}
	return hasSections && hasScore
}
