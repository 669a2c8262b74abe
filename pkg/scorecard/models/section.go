package models

import "math"

// SubCriterion is one scored line item inside a section.
type SubCriterion struct {
	// Description is the expectation text the score was read against.
	Description string `json:"description"`
	// Score is the raw numeric value from the source cell.
	Score float64 `json:"score"`
	// SourceRow is the 1-based grid row the score came from (0 = none).
	SourceRow int `json:"source_row"`
}

// Section groups the scored sub-criteria of one coaching category.
type Section struct {
	// Name is one of the fixed category names, or "Overall" for the
	// fabricated fallback section.
	Name string `json:"name"`
	// SubCriteria are the collected line items, in source order.
	SubCriteria []SubCriterion `json:"sub_criteria,omitempty"`
	// Aggregated stays nil until a score has been collected. With one
	// score it is that score unrounded; with several it is their mean
	// rounded to two decimals.
	Aggregated *float64 `json:"aggregated,omitempty"`
	// ScoreCount is the number of scores collected so far.
	ScoreCount int `json:"score_count"`
}

// Add records one scored sub-criterion and refreshes the aggregate.
func (s *Section) Add(sub SubCriterion) {
	s.SubCriteria = append(s.SubCriteria, sub)
	s.ScoreCount++

	var sum float64
	for _, sc := range s.SubCriteria {
		sum += sc.Score
	}
	agg := sum / float64(s.ScoreCount)
	if s.ScoreCount > 1 {
		agg = Round2(agg)
	}
	s.Aggregated = &agg
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
