package scorecard

import (
	"fmt"

	"github.com/coachsight/scorecard-go/pkg/scorecard/parser"
)

// Fatal input errors. They abort the pipeline before any extraction and
// are re-exported from the parser package so callers can errors.Is
// against this package alone.
var (
	// ErrEmptyDocument indicates the document contains no non-blank rows.
	ErrEmptyDocument = parser.ErrEmptyDocument
	// ErrNoHeaders indicates the first row could not be parsed into any cell.
	ErrNoHeaders = parser.ErrNoHeaders
	// ErrUnsupportedFileType indicates the declared extension is not in
	// the tabular allow-list.
	ErrUnsupportedFileType = parser.ErrUnsupportedFileType
)

// ExtractionError wraps a failure with the pipeline stage it occurred in.
type ExtractionError struct {
	File  string
	Stage string // "read", "remap"
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(file, stage string, err error) *ExtractionError {
	return &ExtractionError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
