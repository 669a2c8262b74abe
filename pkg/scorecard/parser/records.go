package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// dateLayouts are tried in order when parsing a mapped date cell.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// BuildRecords converts data-export rows into one record per call.
// Malformed score cells make a category unscored, never a failure;
// out-of-range scores are discarded with a warning. Entirely blank rows
// are skipped.
func BuildRecords(grid models.Grid, mapping models.ColumnMapping, dataStart int, now time.Time) ([]models.Record, []string) {
	var (
		records  []models.Record
		warnings []string
	)
	for i := dataStart; i < len(grid); i++ {
		row := grid[i]
		if isBlankRow(row) {
			continue
		}

		rec := models.Record{
			CallID:       cellAt(row, mapping, models.FieldIdentifier),
			CallDate:     now,
			Scores:       make(map[string]float64, len(models.Categories)),
			ManagerNotes: cellAt(row, mapping, models.FieldNotes),
			RowNumber:    i + 1,
		}
		if raw := cellAt(row, mapping, models.FieldDate); raw != "" {
			if d, ok := parseDate(raw); ok {
				rec.CallDate = d
			}
		}

		for _, cat := range models.Categories {
			raw := cellAt(row, mapping, cat)
			if raw == "" {
				continue
			}
			score, ok := parseScore(raw)
			if !ok {
				continue
			}
			if !models.InScoreRange(score) {
				warnings = append(warnings, fmt.Sprintf("row %d: %s score %v outside [0,4], discarded", i+1, cat, score))
				continue
			}
			rec.Scores[cat] = score
		}
		rec.Overall = overallOf(rec.Scores)

		records = append(records, rec)
	}
	return records, warnings
}

// cellAt reads the mapped column for key, trimmed. Unmapped keys and
// short rows yield the empty string.
func cellAt(row []string, mapping models.ColumnMapping, key string) string {
	col, ok := mapping.Columns[key]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// parseScore parses a score cell. Anything that is not a bare number
// leaves the cell unscored.
func parseScore(raw string) (float64, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseDate parses a date cell against the known layouts.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// overallOf averages the present category scores, rounded to two
// decimals. Nil when no category was scored.
func overallOf(scores map[string]float64) *float64 {
	if len(scores) == 0 {
		return nil
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	overall := models.Round2(sum / float64(len(scores)))
	return &overall
}
