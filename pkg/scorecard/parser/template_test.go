package parser

import (
	"strings"
	"testing"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

func locate(t *testing.T, grid models.Grid) models.HeaderLocation {
	t.Helper()
	loc := LocateHeaders(grid, 0)
	if loc.RowIndex < 0 {
		t.Fatalf("fixture grid has no header row")
	}
	return loc
}

func TestExtractTemplateSignoffAverage(t *testing.T) {
	grid := models.Grid{
		{"Section", "Expectation", "Score", "Average"},
		{"Opening", "States name and company", "3", ""},
		{"Closing", "Locks in a next step", "4", ""},
		{"", "Manager sign-off", "", "3.2"},
	}

	tr := ExtractTemplate(grid, locate(t, grid), 3)

	if !tr.Resolved || tr.Fallback {
		t.Fatalf("Resolved=%v Fallback=%v, want clean resolution", tr.Resolved, tr.Fallback)
	}
	if tr.Overall != 3.2 {
		t.Errorf("Overall = %v, want 3.2", tr.Overall)
	}
	if tr.SourceRow != 4 {
		t.Errorf("SourceRow = %d, want 4", tr.SourceRow)
	}
	if tr.Context != "Manager sign-off" {
		t.Errorf("Context = %q, want %q", tr.Context, "Manager sign-off")
	}
	if len(tr.Sections) != len(models.Categories) {
		t.Fatalf("got %d sections, want %d", len(tr.Sections), len(models.Categories))
	}
	for _, s := range tr.Sections {
		if s.Aggregated == nil || *s.Aggregated != 3.2 {
			t.Errorf("section %s aggregated = %v, want 3.2", s.Name, s.Aggregated)
		}
		if s.ScoreCount != 1 {
			t.Errorf("section %s ScoreCount = %d, want 1", s.Name, s.ScoreCount)
		}
	}
	if len(tr.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", tr.Warnings)
	}
}

func TestExtractTemplateSignoffScoreColumn(t *testing.T) {
	grid := models.Grid{
		{"Section", "Expectation", "Score", "Average"},
		{"Opening", "Greets warmly", "3", ""},
		{"", "Overall", "2.5", ""},
	}

	tr := ExtractTemplate(grid, locate(t, grid), 2)

	if !tr.Resolved || tr.Fallback {
		t.Fatalf("Resolved=%v Fallback=%v, want clean resolution", tr.Resolved, tr.Fallback)
	}
	if tr.Overall != 2.5 || tr.SourceRow != 3 {
		t.Errorf("got %v from row %d, want 2.5 from row 3", tr.Overall, tr.SourceRow)
	}
}

func TestExtractTemplateSignoffAnyCell(t *testing.T) {
	grid := models.Grid{
		{"Sections", "Expectations", "Score", "", ""},
		{"Opening", "Greets warmly", "3", "", ""},
		{"Closing", "Asks for the meeting", "4", "", ""},
		{"Manager sign-off", "Overall call quality", "N/A", "", "1.8"},
	}

	tr := ExtractTemplate(grid, locate(t, grid), 3)

	if !tr.Resolved || !tr.Fallback {
		t.Fatalf("Resolved=%v Fallback=%v, want fallback resolution", tr.Resolved, tr.Fallback)
	}
	if tr.Overall != 1.8 || tr.SourceRow != 4 {
		t.Errorf("got %v from row %d, want 1.8 from row 4", tr.Overall, tr.SourceRow)
	}
	if tr.Context != "Overall call quality" {
		t.Errorf("Context = %q, want %q", tr.Context, "Overall call quality")
	}
	want := "sign-off columns unusable; overall score 1.8 recovered from row 4"
	if len(tr.Warnings) != 1 || tr.Warnings[0] != want {
		t.Errorf("warnings = %v, want [%q]", tr.Warnings, want)
	}
	for _, s := range tr.Sections {
		if s.Aggregated == nil || *s.Aggregated != 1.8 {
			t.Errorf("section %s aggregated = %v, want 1.8", s.Name, s.Aggregated)
		}
	}
}

func TestExtractTemplateSignoffScan(t *testing.T) {
	// The sign-off row sits far past the end of this short document, so
	// the score is recovered from the first scored data row.
	grid := models.Grid{
		{"Coaching Review", "", ""},
		{"Section", "Expectation", "Score"},
		{"", "Rep states name and company", "3"},
		{"", "Handles objections", "N/A"},
	}

	tr := ExtractTemplate(grid, locate(t, grid), 0)

	if !tr.Resolved || !tr.Fallback {
		t.Fatalf("Resolved=%v Fallback=%v, want fallback resolution", tr.Resolved, tr.Fallback)
	}
	if tr.Overall != 3 || tr.SourceRow != 3 {
		t.Errorf("got %v from row %d, want 3 from row 3", tr.Overall, tr.SourceRow)
	}
	if tr.Context != "Rep states name and company" {
		t.Errorf("Context = %q, want supplying row's criterion text", tr.Context)
	}
	if len(tr.Sections) != len(models.Categories) {
		t.Fatalf("got %d sections, want %d", len(tr.Sections), len(models.Categories))
	}
	for _, s := range tr.Sections {
		if s.Aggregated == nil || *s.Aggregated != 3 {
			t.Errorf("section %s aggregated = %v, want 3", s.Name, s.Aggregated)
		}
		if len(s.SubCriteria) != 1 || s.SubCriteria[0].SourceRow != 3 {
			t.Errorf("section %s sub-criteria = %v, want one from row 3", s.Name, s.SubCriteria)
		}
	}
}

func TestExtractTemplateNothingUsable(t *testing.T) {
	grid := models.Grid{
		{"Section", "Expectation", "Score"},
		{"Opening", "Greets warmly", "N/A"},
		{"Closing", "Asks for the meeting", "TBD"},
	}

	tr := ExtractTemplate(grid, locate(t, grid), 0)

	if tr.Resolved {
		t.Fatal("Resolved = true, want false")
	}
	if !tr.Fallback {
		t.Error("Fallback = false, want true")
	}
	if tr.Overall != 0 || tr.SourceRow != 0 {
		t.Errorf("Overall=%v SourceRow=%d, want 0 and 0", tr.Overall, tr.SourceRow)
	}
	if len(tr.Sections) != 1 {
		t.Fatalf("got %d sections, want the single fabricated one", len(tr.Sections))
	}
	s := tr.Sections[0]
	if s.Name != OverallSectionName {
		t.Errorf("section name = %q, want %q", s.Name, OverallSectionName)
	}
	if s.Aggregated == nil || *s.Aggregated != 0 {
		t.Errorf("aggregated = %v, want 0", s.Aggregated)
	}
	if tr.Context != "Overall coaching score" {
		t.Errorf("Context = %q, want placeholder", tr.Context)
	}
	found := false
	for _, w := range tr.Warnings {
		if w == "no usable score found anywhere in the document" {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want the no-usable-score warning", tr.Warnings)
	}
}

func TestExtractTemplateWalkWarnings(t *testing.T) {
	grid := models.Grid{
		{"Section", "Expectation", "Score", "Average"},
		{"", "Keeps an upbeat tone", "7", ""},
		{"", "Mystery criterion xyz", "3", ""},
		{"", "Handles objections", "2", "2.4"},
	}

	tr := ExtractTemplate(grid, locate(t, grid), 3)

	if !tr.Resolved || tr.Overall != 2.4 {
		t.Fatalf("Resolved=%v Overall=%v, want clean 2.4", tr.Resolved, tr.Overall)
	}
	if len(tr.Warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", tr.Warnings)
	}
	if want := "row 2: score 7 outside [0,4], discarded"; tr.Warnings[0] != want {
		t.Errorf("warnings[0] = %q, want %q", tr.Warnings[0], want)
	}
	if !strings.Contains(tr.Warnings[1], `"Mystery criterion xyz" matched no category`) {
		t.Errorf("warnings[1] = %q, want unmatched-criterion warning", tr.Warnings[1])
	}
}

func TestExtractTemplatePlaceholderContext(t *testing.T) {
	grid := models.Grid{
		{"Section", "Expectation", "Score", "Average"},
		{"", "", "", "3.5"},
	}

	tr := ExtractTemplate(grid, locate(t, grid), 1)

	if !tr.Resolved || tr.Overall != 3.5 {
		t.Fatalf("Resolved=%v Overall=%v, want clean 3.5", tr.Resolved, tr.Overall)
	}
	if tr.Context != "Overall coaching score" {
		t.Errorf("Context = %q, want placeholder", tr.Context)
	}
	for _, s := range tr.Sections {
		if len(s.SubCriteria) != 1 || s.SubCriteria[0].Description != "Overall coaching score" {
			t.Errorf("section %s sub-criteria = %v, want placeholder description", s.Name, s.SubCriteria)
		}
	}
}

func TestExtractTemplateSkipsBlankRows(t *testing.T) {
	grid := models.Grid{
		{"Section", "Expectation", "Score"},
		{"", "", ""},
		{"Opening", "Greets warmly", "3"},
		{"", "  ", ""},
	}

	tr := ExtractTemplate(grid, locate(t, grid), 0)

	if !tr.Resolved {
		t.Fatal("expected the scan to recover the one real score")
	}
	if tr.Overall != 3 || tr.SourceRow != 3 {
		t.Errorf("got %v from row %d, want 3 from row 3", tr.Overall, tr.SourceRow)
	}
}
