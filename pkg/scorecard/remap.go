package scorecard

import (
	"fmt"

	deepcopy "github.com/tiendc/go-deepcopy"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
	"github.com/coachsight/scorecard-go/pkg/scorecard/parser"
)

// Remap re-extracts a data export using a caller-corrected column
// mapping and sends the rebuilt records back through the validation
// gate. This is the engine half of the manual remap flow: the caller
// gathers corrections from the user, the engine re-parses the same
// bytes, which is cheap and deterministic.
func Remap(name string, data []byte, mapping models.ColumnMapping, opts Options) (*models.Result, error) {
	logger := opts.logger()

	for key := range mapping.Columns {
		if !knownMappingKey(key) {
			return nil, NewExtractionError(name, "remap", fmt.Errorf("unknown mapping key %q", key))
		}
	}
	// The supplied mapping usually aliases live caller state; rebuilding
	// must not mutate it and the result must not share its maps.
	var applied models.ColumnMapping
	if err := deepcopy.Copy(&applied, &mapping); err != nil {
		return nil, NewExtractionError(name, "remap", err)
	}
	if applied.Fields == nil {
		applied.Fields = make(map[string]string)
	}
	if applied.Columns == nil {
		applied.Columns = make(map[string]int)
	}

	grid, err := parser.ReadGrid(name, data, opts.Delimiter)
	if err != nil {
		return nil, NewExtractionError(name, "read", err)
	}
	// Callers may supply column indexes only; the header texts come from
	// the grid itself.
	for key, col := range applied.Columns {
		if col < 0 || col >= grid.Width() {
			return nil, NewExtractionError(name, "remap", fmt.Errorf("mapping key %q points at column %d of %d", key, col, grid.Width()))
		}
		applied.Fields[key] = grid[0][col]
	}

	records, warnings := parser.BuildRecords(grid, applied, 1, opts.now())
	res := &models.Result{
		Format:   models.FormatDataExport,
		Records:  records,
		Mapping:  &applied,
		Warnings: warnings,
	}
	res.Confidence = ConfidenceClean
	if missing := applied.MissingRequired(); len(missing) > 0 {
		res.Confidence = ConfidenceFallback
		for _, key := range missing {
			res.Warnings = append(res.Warnings, fmt.Sprintf("required column %q not mapped", key))
		}
	}
	res.Errors = Validate(res.Records, res.Confidence)
	logger.Info("remap finished", "file", name, "records", len(res.Records), "blocked", res.Blocked())
	return res, nil
}

// knownMappingKey reports whether key is one of the canonical
// column-mapping keys.
func knownMappingKey(key string) bool {
	for _, k := range models.MappingKeys() {
		if k == key {
			return true
		}
	}
	return false
}
