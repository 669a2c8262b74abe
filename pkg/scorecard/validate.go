package scorecard

import (
	"fmt"
	"strings"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// MinConfidence is the threshold below which the gate flags a parse for
// review before submission.
const MinConfidence = 0.5

// Validate runs the validation gate over a batch of records and the
// extraction confidence. It returns human-readable findings; an empty
// list means the batch is accepted. Validation is pure, so re-running it
// over an already accepted batch never introduces new findings.
func Validate(records []models.Record, confidence float64) []string {
	if len(records) == 0 {
		return []string{"No valid scorecard data found."}
	}

	var errs []string
	if confidence < MinConfidence {
		errs = append(errs, fmt.Sprintf("Low extraction confidence (%.0f%%): review the parsed values before submitting.", confidence*100))
	}

	var missing []string
	first := records[0]
	for _, cat := range models.EssentialCategories {
		if !first.Scored(cat) {
			missing = append(missing, cat)
		}
	}
	if len(missing) > 2 {
		errs = append(errs, fmt.Sprintf("Missing required scores: %s.", strings.Join(missing, ", ")))
	}

	blank := 0
	for _, rec := range records {
		if strings.TrimSpace(rec.CallID) == "" {
			blank++
		}
	}
	if blank > 0 {
		errs = append(errs, fmt.Sprintf("%d record(s) missing a call identifier.", blank))
	}
	return errs
}
