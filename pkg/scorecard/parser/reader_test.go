package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadGridDelimited(t *testing.T) {
	csv := "Call ID,Notes,Score\n" +
		"C-1,\"Great, but rushed\",3\n" +
		"\n" +
		"C-2,\"said \"\"hello\"\" twice\",2\n"

	grid, err := ReadGrid("calls.csv", []byte(csv), 0)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}
	if len(grid) != 3 {
		t.Fatalf("got %d rows, want 3 (blank line dropped)", len(grid))
	}
	if grid[1][1] != "Great, but rushed" {
		t.Errorf("quoted separator: got %q", grid[1][1])
	}
	if grid[2][1] != `said "hello" twice` {
		t.Errorf("doubled quotes: got %q", grid[2][1])
	}
}

func TestReadGridStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("ID,Score\nX,3\n")...)
	grid, err := ReadGrid("export.csv", data, 0)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}
	if grid[0][0] != "ID" {
		t.Errorf("first header = %q, want %q", grid[0][0], "ID")
	}
}

func TestReadGridTabSeparated(t *testing.T) {
	grid, err := ReadGrid("export.tsv", []byte("A\tB\n1\t2\n"), 0)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}
	if grid[0][1] != "B" || grid[1][0] != "1" {
		t.Errorf("unexpected grid: %v", grid)
	}
}

func TestReadGridDelimiterOverride(t *testing.T) {
	grid, err := ReadGrid("export.csv", []byte("a;b\n1;2\n"), ';')
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}
	if len(grid[0]) != 2 || grid[0][1] != "b" {
		t.Errorf("unexpected grid: %v", grid)
	}
}

func TestReadGridPadsShortRows(t *testing.T) {
	grid, err := ReadGrid("export.csv", []byte("A,B,C\n1,2\n"), 0)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}
	if len(grid[1]) != 3 {
		t.Fatalf("short row not padded: len = %d", len(grid[1]))
	}
	if grid[1][2] != "" {
		t.Errorf("padding cell = %q, want empty", grid[1][2])
	}
}

func TestReadGridEmptyDocument(t *testing.T) {
	for _, data := range []string{"", "\n\n", "   \n\t\n"} {
		if _, err := ReadGrid("empty.csv", []byte(data), 0); !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("ReadGrid(%q) error = %v, want ErrEmptyDocument", data, err)
		}
	}
}

func TestReadGridUnsupportedFileType(t *testing.T) {
	_, err := ReadGrid("slides.pdf", []byte("whatever"), 0)
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("error = %v, want ErrUnsupportedFileType", err)
	}
}

func TestSupportedExt(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"calls.csv", true},
		{"calls.TSV", true},
		{"calls.txt", true},
		{"calls.xlsx", true},
		{"calls.xlsm", true},
		{"calls.xls", true},
		{"calls.pdf", false},
		{"calls.docx", false},
		{"calls", false},
	}
	for _, tt := range tests {
		if got := SupportedExt(tt.name); got != tt.want {
			t.Errorf("SupportedExt(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestReadGridWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "Call ID")
	f.SetCellValue(sheet, "B1", "Opening")
	f.SetCellValue(sheet, "C1", "Closing")
	f.SetCellValue(sheet, "A2", "C-1")
	f.SetCellValue(sheet, "B2", 3)

	tmpFile := filepath.Join(t.TempDir(), "export.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read test file: %v", err)
	}

	grid, err := ReadGrid("export.xlsx", data, 0)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}
	if len(grid) != 2 {
		t.Fatalf("got %d rows, want 2", len(grid))
	}
	if grid[0][0] != "Call ID" || grid[1][0] != "C-1" {
		t.Errorf("unexpected grid: %v", grid)
	}
	// Rows come back padded to the widest row.
	if len(grid[1]) != len(grid[0]) {
		t.Errorf("row widths differ: %d vs %d", len(grid[1]), len(grid[0]))
	}
}

func TestReadGridWorkbookNoHeaders(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// Row 1 left entirely empty; data starts on row 2.
	f.SetCellValue("Sheet1", "A2", "orphan")

	tmpFile := filepath.Join(t.TempDir(), "headless.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read test file: %v", err)
	}

	if _, err := ReadGrid("headless.xlsx", data, 0); !errors.Is(err, ErrNoHeaders) {
		t.Errorf("error = %v, want ErrNoHeaders", err)
	}
}

func TestReadGridWorkbookEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	tmpFile := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read test file: %v", err)
	}

	if _, err := ReadGrid("empty.xlsx", data, 0); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("error = %v, want ErrEmptyDocument", err)
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`a,"",c`, []string{"a", "", "c"}},
		{`"he said ""hi""",x`, []string{`he said "hi"`, "x"}},
		{"trailing,", []string{"trailing", ""}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		got := splitLine(tt.line, ',')
		if len(got) != len(tt.want) {
			t.Errorf("splitLine(%q) = %v, want %v", tt.line, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitLine(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}
