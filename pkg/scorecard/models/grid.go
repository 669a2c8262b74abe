package models

// Grid is a rectangular view of a tabular document. All rows share one
// column index space; blank cells hold the empty string.
type Grid [][]string

// Width returns the shared column count (0 for an empty grid).
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// HeaderLocation describes where the real column headers sit in a grid.
type HeaderLocation struct {
	// RowIndex is the 0-based header row index, -1 when no template-style
	// header row was found and row 0 is assumed.
	RowIndex int `json:"row_index"`
	// Tokens are the raw cell values of the header row.
	Tokens []string `json:"tokens"`
	// DataStart is the 0-based index of the first data row.
	DataStart int `json:"data_start"`
}
