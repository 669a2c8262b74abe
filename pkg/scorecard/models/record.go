package models

import "time"

// Record is one normalized call evaluation.
type Record struct {
	// CallID identifies the evaluated call; blank when the source had none.
	CallID string `json:"call_id"`
	// CallDate falls back to the processing date when the source carries
	// no usable date.
	CallDate time.Time `json:"call_date"`
	// Overall is the overall score in [0,4]; nil when none could be derived.
	Overall *float64 `json:"overall,omitempty"`
	// Scores maps category name to score. A missing key means the
	// category was not scored in the source.
	Scores map[string]float64 `json:"scores"`
	// ManagerNotes carries free-text commentary when the source had any.
	ManagerNotes string `json:"manager_notes,omitempty"`
	// RowNumber is the 1-based source row the record was built from.
	RowNumber int `json:"row_number"`
}

// Scored reports whether the record carries a score for the category.
func (r Record) Scored(category string) bool {
	_, ok := r.Scores[category]
	return ok
}
