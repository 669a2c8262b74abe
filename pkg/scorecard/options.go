// Package scorecard converts tabular call-evaluation documents into
// normalized per-call records of category scores.
package scorecard

import (
	"io"
	"log/slog"
	"time"

	"github.com/coachsight/scorecard-go/pkg/scorecard/parser"
)

// Options configures extraction behavior. The zero value selects the
// documented defaults, so Options{} is always safe to pass.
type Options struct {
	// ScanWindow is how many leading rows are searched for a template
	// header row. Zero selects parser.DefaultScanWindow.
	ScanWindow int
	// SignoffRow is the 1-based data-row position of the manager
	// sign-off row. Zero selects parser.DefaultSignoffRow.
	SignoffRow int
	// Delimiter overrides the cell separator for delimited text. Zero
	// selects the separator by extension (tab for .tsv, comma otherwise).
	Delimiter rune
	// Logger receives pipeline progress and warnings. Nil discards logs.
	Logger *slog.Logger
	// Clock supplies the fallback call date. Nil uses time.Now.
	Clock func() time.Time
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		ScanWindow: parser.DefaultScanWindow,
		SignoffRow: parser.DefaultSignoffRow,
	}
}

// EffectiveScanWindow returns the header scan window to use.
func (o Options) EffectiveScanWindow() int {
	if o.ScanWindow > 0 {
		return o.ScanWindow
	}
	return parser.DefaultScanWindow
}

// EffectiveSignoffRow returns the sign-off data-row position to use.
func (o Options) EffectiveSignoffRow() int {
	if o.SignoffRow > 0 {
		return o.SignoffRow
	}
	return parser.DefaultSignoffRow
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}
