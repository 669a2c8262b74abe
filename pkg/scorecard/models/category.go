// Package models defines data structures for scorecard extraction.
package models

// The eight coaching categories every document is normalized into,
// regardless of its physical layout.
const (
	CategoryOpening       = "Opening"
	CategoryObjections    = "Objection Handling"
	CategoryQualification = "Qualification"
	CategoryTone          = "Tone & Energy"
	CategoryAssertiveness = "Assertiveness & Control"
	CategoryAcumen        = "Business Acumen & Relevance"
	CategoryClosing       = "Closing"
	CategoryTalkTime      = "Talk Time"
)

// Categories lists all scoring categories in canonical order.
var Categories = []string{
	CategoryOpening,
	CategoryObjections,
	CategoryQualification,
	CategoryTone,
	CategoryAssertiveness,
	CategoryAcumen,
	CategoryClosing,
	CategoryTalkTime,
}

// EssentialCategories are the categories a usable scorecard cannot do
// without; the validation gate checks them against the first record.
var EssentialCategories = []string{
	CategoryOpening,
	CategoryObjections,
	CategoryQualification,
	CategoryClosing,
}

// Valid score bounds for a single category or overall value.
const (
	ScoreMin = 0.0
	ScoreMax = 4.0
)

// InScoreRange reports whether v is an acceptable score value.
func InScoreRange(v float64) bool {
	return v >= ScoreMin && v <= ScoreMax
}

// IsCategory reports whether name is one of the fixed category names.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
