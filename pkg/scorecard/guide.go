package scorecard

import (
	"fmt"
	"strings"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// FormatGuide describes the supported layouts in plain text. Callers
// show it to users whose upload came back with an unknown format.
func FormatGuide() string {
	var b strings.Builder
	b.WriteString("Supported scorecard layouts:\n\n")
	b.WriteString("  data_export        wide table, one row per call, one column per category.\n")
	fmt.Fprintf(&b, "                     Expected columns: Call ID, %s, Manager Notes.\n\n", strings.Join(models.Categories, ", "))
	b.WriteString("  coaching_template  vertical table, one row per criterion, with\n")
	b.WriteString("                     Sections / Expectations / Score / Avg columns and a\n")
	b.WriteString("                     manager sign-off row carrying the overall score.\n\n")
	b.WriteString("Accepted file types: .csv, .tsv, .txt, .xlsx, .xlsm, .xls.\n")
	return b.String()
}
