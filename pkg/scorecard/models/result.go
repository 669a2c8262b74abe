package models

// Result is the tagged outcome of one extraction attempt. Fatal input
// problems surface as Go errors instead; everything non-fatal lands here.
type Result struct {
	// Format is the layout the classifier settled on.
	Format Format `json:"format"`
	// Records holds one normalized record per evaluated call.
	Records []Record `json:"records"`
	// Sections carries the per-category breakdown for coaching templates.
	Sections []Section `json:"sections,omitempty"`
	// Mapping is the resolved column mapping for data exports.
	Mapping *ColumnMapping `json:"mapping,omitempty"`
	// Confidence is 0.9 for a clean parse, 0.3 when any fallback path was
	// taken, 0 when the layout was not recognized.
	Confidence float64 `json:"confidence"`
	// Warnings are non-fatal extraction notes: discarded cells, fallback
	// usage, unmapped columns.
	Warnings []string `json:"warnings,omitempty"`
	// Errors are validation-gate findings; a non-empty list blocks
	// submission until the caller resolves them.
	Errors []string `json:"errors,omitempty"`
}

// Blocked reports whether the validation gate rejected the result.
func (r *Result) Blocked() bool {
	return len(r.Errors) > 0
}
