package parser

import (
	"strings"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// criterionRule assigns a category when match returns true for the
// lower-cased criterion text.
type criterionRule struct {
	category string
	match    func(t string) bool
}

// criterionRules is evaluated top to bottom and the first hit wins, so
// specific wording stays above looser catch-alls. Criterion text often
// satisfies several categories' weaker cues; the order is load-bearing.
var criterionRules = []criterionRule{
	{models.CategoryOpening, func(t string) bool {
		return has(t, "name") && (has(t, "company") || has(t, "reason"))
	}},
	{models.CategoryOpening, func(t string) bool {
		return has(t, "opening") || has(t, "greeting") || has(t, "introduc") || has(t, "permission")
	}},
	{models.CategoryObjections, func(t string) bool {
		return has(t, "objection") || has(t, "pushback") || has(t, "brush-off") || has(t, "resistance")
	}},
	{models.CategoryQualification, func(t string) bool {
		return has(t, "qualif") || has(t, "discovery") || has(t, "pain point") ||
			(has(t, "question") && (has(t, "need") || has(t, "open-ended")))
	}},
	{models.CategoryTalkTime, func(t string) bool {
		return has(t, "talk time") || has(t, "talk-time") || has(t, "listen") || has(t, "monolog") || has(t, "ratio")
	}},
	{models.CategoryTone, func(t string) bool {
		return has(t, "tone") || has(t, "energy") || has(t, "enthusiasm") || has(t, "pace")
	}},
	{models.CategoryAssertiveness, func(t string) bool {
		return has(t, "assertive") || has(t, "control") || has(t, "redirect") || has(t, "confiden")
	}},
	{models.CategoryAcumen, func(t string) bool {
		return has(t, "business") || has(t, "industry") || has(t, "acumen") || has(t, "relevan") || has(t, "value prop")
	}},
	{models.CategoryClosing, func(t string) bool {
		return has(t, "closing") || has(t, "next step") || has(t, "meeting") || has(t, "commitment") || has(t, "wrap")
	}},
}

// ClassifyCriterion maps free-form criterion text to one of the fixed
// category names. The second result is false when no rule matched;
// callers decide whether to drop or bucket such rows.
func ClassifyCriterion(text string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return "", false
	}
	for _, rule := range criterionRules {
		if rule.match(t) {
			return rule.category, true
		}
	}
	return "", false
}

func has(t, sub string) bool {
	return strings.Contains(t, sub)
}
