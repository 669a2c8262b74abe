package scorecard

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
	"github.com/coachsight/scorecard-go/pkg/scorecard/parser"
)

// Confidence tiers reported with every result.
const (
	// ConfidenceClean means extraction succeeded without fallbacks.
	ConfidenceClean = 0.9
	// ConfidenceFallback means a degraded path produced the records.
	ConfidenceFallback = 0.3
)

// Extract parses a scorecard document into normalized per-call records.
// The name is used only to pick the parsing branch by extension. Fatal
// input problems (unsupported type, empty document, unreadable headers)
// return an error; everything else lands in the result, including the
// validation-gate findings in Result.Errors.
func Extract(name string, data []byte, opts Options) (*models.Result, error) {
	logger := opts.logger()

	if !parser.SupportedExt(name) {
		err := fmt.Errorf("%w: %q", ErrUnsupportedFileType, filepath.Ext(name))
		return nil, NewExtractionError(name, "read", err)
	}
	grid, err := parser.ReadGrid(name, data, opts.Delimiter)
	if err != nil {
		return nil, NewExtractionError(name, "read", err)
	}
	logger.Info("document read", "file", name, "rows", len(grid), "cols", grid.Width())

	loc := parser.LocateHeaders(grid, opts.EffectiveScanWindow())
	format := parser.ClassifyFormat(grid, loc)
	logger.Debug("format classified", "file", name, "format", format, "header_row", loc.RowIndex)

	res := &models.Result{Format: format}
	switch format {
	case models.FormatCoachingTemplate:
		tr := parser.ExtractTemplate(grid, loc, opts.EffectiveSignoffRow())
		res.Sections = tr.Sections
		res.Warnings = tr.Warnings
		rec, warnings := templateRecord(tr, opts.now())
		res.Records = []models.Record{rec}
		res.Warnings = append(res.Warnings, warnings...)
		res.Confidence = ConfidenceClean
		if tr.Fallback {
			res.Confidence = ConfidenceFallback
		}

	case models.FormatDataExport:
		mapping := parser.MapColumns(loc.Tokens)
		res.Mapping = &mapping
		missing := mapping.MissingRequired()
		for _, key := range missing {
			res.Warnings = append(res.Warnings, fmt.Sprintf("required column %q not mapped", key))
		}
		records, warnings := parser.BuildRecords(grid, mapping, loc.DataStart, opts.now())
		res.Records = records
		res.Warnings = append(res.Warnings, warnings...)
		res.Confidence = ConfidenceClean
		if len(missing) > 0 {
			res.Confidence = ConfidenceFallback
		}

	default:
		res.Confidence = 0
	}

	for _, w := range res.Warnings {
		logger.Warn("extraction warning", "file", name, "detail", w)
	}
	res.Errors = Validate(res.Records, res.Confidence)
	logger.Info("extraction finished", "file", name, "format", res.Format,
		"records", len(res.Records), "confidence", res.Confidence, "blocked", res.Blocked())
	return res, nil
}

// templateRecord builds the single record a coaching template yields.
// The fabricated no-score case keeps a blank identifier so the
// validation gate flags it for review.
func templateRecord(tr parser.TemplateResult, now time.Time) (models.Record, []string) {
	overall := tr.Overall
	rec := models.Record{
		CallDate:  now,
		Overall:   &overall,
		Scores:    make(map[string]float64, len(tr.Sections)),
		RowNumber: tr.SourceRow,
	}
	if tr.SourceRow > 0 {
		rec.CallID = fmt.Sprintf("coaching-call-%d", tr.SourceRow)
	}

	var warnings []string
	for _, s := range tr.Sections {
		if s.Aggregated == nil || !models.IsCategory(s.Name) {
			continue
		}
		if !models.InScoreRange(*s.Aggregated) {
			warnings = append(warnings, fmt.Sprintf("section %s: aggregate %v outside [0,4], discarded", s.Name, *s.Aggregated))
			continue
		}
		rec.Scores[s.Name] = *s.Aggregated
	}
	return rec, warnings
}
