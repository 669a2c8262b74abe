// Package parser implements the stages of the scorecard extraction
// pipeline: grid reading, header location, format classification,
// template extraction and column mapping.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// ErrEmptyDocument indicates the document contains no non-blank rows.
var ErrEmptyDocument = errors.New("document contains no data")

// ErrNoHeaders indicates the first row could not be parsed into any cell.
var ErrNoHeaders = errors.New("could not read column headers")

// ErrUnsupportedFileType indicates the file extension is not in the
// tabular allow-list.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// utf8BOM prefixes delimited files exported by some Windows tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// delimitedExts maps delimited-text extensions to their default separator.
var delimitedExts = map[string]rune{
	".csv": ',',
	".txt": ',',
	".tsv": '\t',
}

// spreadsheetExts lists extensions handled by the spreadsheet branches.
var spreadsheetExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
}

// SupportedExt reports whether the declared file name carries an
// extension from the tabular allow-list.
func SupportedExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := delimitedExts[ext]; ok {
		return true
	}
	return spreadsheetExts[ext]
}

// ReadGrid converts raw document bytes into a rectangular grid. The
// declared name selects the parsing branch by extension. A non-zero
// delimiter overrides the separator for delimited text.
func ReadGrid(name string, data []byte, delimiter rune) (models.Grid, error) {
	ext := strings.ToLower(filepath.Ext(name))

	var (
		rows [][]string
		err  error
	)
	switch {
	case delimitedExts[ext] != 0:
		sep := delimitedExts[ext]
		if delimiter != 0 {
			sep = delimiter
		}
		rows = parseDelimited(data, sep)
	case ext == ".xlsx" || ext == ".xlsm":
		rows, err = readWorkbook(data)
	case ext == ".xls":
		rows, err = readLegacyWorkbook(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
	if err != nil {
		return nil, err
	}

	if !hasContent(rows) {
		return nil, ErrEmptyDocument
	}
	if len(rows[0]) == 0 {
		return nil, ErrNoHeaders
	}
	return pad(rows), nil
}

// parseDelimited splits delimited text into rows of cells. Parsing is
// line-oriented: a quoted cell never spans lines. Blank lines are dropped.
func parseDelimited(data []byte, sep rune) [][]string {
	data = bytes.TrimPrefix(data, utf8BOM)
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitLine(line, sep))
	}
	return rows
}

// splitLine parses one delimited line. A quote toggles the in-quotes
// state so separators inside quotes are preserved; a doubled quote inside
// a quoted cell yields a literal quote.
func splitLine(line string, sep rune) []string {
	var (
		cells  []string
		cell   strings.Builder
		quoted bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == '"':
			if quoted && i+1 < len(runes) && runes[i+1] == '"' {
				cell.WriteRune('"')
				i++
				continue
			}
			quoted = !quoted
		case r == sep && !quoted:
			cells = append(cells, cell.String())
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	return append(cells, cell.String())
}

// readWorkbook reads the first sheet of an xlsx/xlsm container.
func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyDocument
	}
	return f.GetRows(sheet)
}

// readLegacyWorkbook reads the first sheet of a legacy .xls container.
func readLegacyWorkbook(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, ErrEmptyDocument
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrEmptyDocument
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// hasContent reports whether any cell holds a non-blank value.
func hasContent(rows [][]string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return true
			}
		}
	}
	return false
}

// pad normalizes ragged rows to a uniform width.
func pad(rows [][]string) models.Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	grid := make(models.Grid, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		grid[i] = cells
	}
	return grid
}

// isBlankRow reports whether every cell of the row is blank.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
