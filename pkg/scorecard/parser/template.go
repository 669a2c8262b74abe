package parser

import (
	"fmt"
	"strings"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// DefaultSignoffRow is the 1-based data-row position where coaching
// templates conventionally carry the manager sign-off score.
const DefaultSignoffRow = 45

// OverallSectionName names the fabricated section emitted when no usable
// score exists anywhere in a template document.
const OverallSectionName = "Overall"

// signoffPlaceholder stands in when no context text is available.
const signoffPlaceholder = "Overall coaching score"

// TemplateResult is everything the template extractor produced for one
// document.
type TemplateResult struct {
	// Sections covers every fixed category when a score was resolved; on
	// total failure it holds the single fabricated Overall section.
	Sections []models.Section
	// Overall is the resolved sign-off score, 0 for the fabricated case.
	Overall float64
	// SourceRow is the 1-based grid row that supplied the score (0 = none).
	SourceRow int
	// Context is the free text the score was read against.
	Context string
	// Fallback reports that the score was recovered by scanning instead
	// of read from the sign-off columns, or that none was found at all.
	Fallback bool
	// Resolved is false when no usable score existed anywhere.
	Resolved bool
	// Warnings lists discarded cells and skipped rows.
	Warnings []string
}

// ExtractTemplate runs the coaching-template extraction over the data
// rows. Scored rows are first attributed to sections, by explicit
// section name where present and through the criterion classifier
// otherwise. The sign-off resolution then settles the authoritative
// overall score: one holistic score governs all categories, so it
// supersedes the per-category attribution.
func ExtractTemplate(grid models.Grid, loc models.HeaderLocation, signoffRow int) TemplateResult {
	if signoffRow <= 0 {
		signoffRow = DefaultSignoffRow
	}

	sections := newSections()
	index := make(map[string]int, len(sections))
	for i, s := range sections {
		index[s.Name] = i
	}

	var warnings []string
	for i := loc.DataStart; i < len(grid); i++ {
		row := grid[i]
		if isBlankRow(row) {
			continue
		}
		raw := cellAtCol(row, TemplateColScore)
		if raw == "" {
			continue
		}
		score, ok := parseScore(raw)
		if !ok {
			continue
		}
		if !models.InScoreRange(score) {
			warnings = append(warnings, fmt.Sprintf("row %d: score %v outside [0,4], discarded", i+1, score))
			continue
		}

		desc := cellAtCol(row, TemplateColCriterion)
		category, matched := sectionFor(cellAtCol(row, TemplateColSection))
		if !matched {
			category, matched = ClassifyCriterion(desc)
		}
		if !matched {
			warnings = append(warnings, fmt.Sprintf("row %d: criterion %q matched no category, skipped", i+1, desc))
			continue
		}
		sections[index[category]].Add(models.SubCriterion{
			Description: desc,
			Score:       score,
			SourceRow:   i + 1,
		})
	}

	res := resolveSignoff(grid, loc, signoffRow)
	if res.ok {
		if res.context == "" {
			res.context = signoffPlaceholder
		}
		// One manager sign-off score governs the whole call: distribute
		// it to every section, superseding the walk's attribution.
		sections = newSections()
		for i := range sections {
			sections[i].Add(models.SubCriterion{
				Description: res.context,
				Score:       res.score,
				SourceRow:   res.row,
			})
		}
		if res.fallback {
			warnings = append(warnings, fmt.Sprintf("sign-off columns unusable; overall score %v recovered from row %d", res.score, res.row))
		}
	}

	var kept []models.Section
	for _, s := range sections {
		if s.ScoreCount > 0 {
			kept = append(kept, s)
		}
	}

	result := TemplateResult{
		Overall:   res.score,
		SourceRow: res.row,
		Context:   res.context,
		Fallback:  res.fallback || !res.ok,
		Resolved:  res.ok,
	}
	if len(kept) == 0 {
		fab := models.Section{Name: OverallSectionName}
		fab.Add(models.SubCriterion{Description: signoffPlaceholder, Score: 0})
		kept = []models.Section{fab}
		result.Context = signoffPlaceholder
		warnings = append(warnings, "no usable score found anywhere in the document")
	}
	result.Sections = kept
	result.Warnings = warnings
	return result
}

// signoffResolution carries the outcome of the five-step score chain.
type signoffResolution struct {
	score    float64
	row      int // 1-based supplying row
	context  string
	fallback bool
	ok       bool
}

// resolveSignoff resolves the authoritative overall score. Steps 1 and 2
// read the sign-off row's pre-computed average and raw score columns.
// Step 3 accepts any in-range numeric in that row. Step 4 scans the data
// rows for the first in-range numeric anywhere. Step 5 is failure.
func resolveSignoff(grid models.Grid, loc models.HeaderLocation, signoffRow int) signoffResolution {
	target := loc.DataStart + signoffRow - 1

	var targetContext string
	if target < len(grid) {
		row := grid[target]
		targetContext = cellAtCol(row, TemplateColCriterion)

		for _, col := range []int{TemplateColAverage, TemplateColScore} {
			if score, ok := parseScore(cellAtCol(row, col)); ok && models.InScoreRange(score) {
				return signoffResolution{score: score, row: target + 1, context: targetContext, ok: true}
			}
		}
		for _, cell := range row {
			if score, ok := parseScore(cell); ok && models.InScoreRange(score) {
				return signoffResolution{score: score, row: target + 1, context: targetContext, fallback: true, ok: true}
			}
		}
	}

	for i := loc.DataStart; i < len(grid); i++ {
		for _, cell := range grid[i] {
			score, ok := parseScore(cell)
			if !ok || !models.InScoreRange(score) {
				continue
			}
			context := targetContext
			if context == "" {
				context = cellAtCol(grid[i], TemplateColCriterion)
			}
			return signoffResolution{score: score, row: i + 1, context: context, fallback: true, ok: true}
		}
	}
	return signoffResolution{}
}

// newSections initializes one empty section per fixed category.
func newSections() []models.Section {
	sections := make([]models.Section, len(models.Categories))
	for i, name := range models.Categories {
		sections[i] = models.Section{Name: name}
	}
	return sections
}

// cellAtCol reads a fixed-convention column, trimmed, "" when the row is
// too short.
func cellAtCol(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
