package models

// Format identifies the detected document layout.
type Format string

const (
	// FormatDataExport is the wide layout: one row per call, one column
	// per category.
	FormatDataExport Format = "data_export"
	// FormatCoachingTemplate is the vertical layout: one row per
	// criterion, with a separate authoritative summary cell.
	FormatCoachingTemplate Format = "coaching_template"
	// FormatUnknown means neither layout was recognized.
	FormatUnknown Format = "unknown"
)
