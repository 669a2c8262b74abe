package models

// Canonical non-category mapping keys. Category columns use the
// category name itself as the key.
const (
	FieldIdentifier = "identifier"
	FieldDate       = "date"
	FieldDuration   = "duration"
	FieldNotes      = "notes"
)

// MappingKeys returns every canonical column-mapping key in stable order.
func MappingKeys() []string {
	keys := []string{FieldIdentifier, FieldDate, FieldDuration}
	keys = append(keys, Categories...)
	return append(keys, FieldNotes)
}

// RequiredField reports whether a canonical key must resolve for a clean
// parse. Required fields are the identifier and all category columns.
func RequiredField(key string) bool {
	return key == FieldIdentifier || IsCategory(key)
}

// ColumnMapping binds canonical fields to source header columns.
type ColumnMapping struct {
	// Fields maps canonical key to the matched source header text,
	// "" when unmapped.
	Fields map[string]string `json:"fields"`
	// Columns maps canonical key to the 0-based source column index;
	// unmapped keys are absent.
	Columns map[string]int `json:"columns"`
}

// Mapped reports whether key resolved to a source column.
func (m ColumnMapping) Mapped(key string) bool {
	_, ok := m.Columns[key]
	return ok
}

// MissingRequired lists required keys that did not resolve, in canonical
// key order.
func (m ColumnMapping) MissingRequired() []string {
	var missing []string
	for _, key := range MappingKeys() {
		if RequiredField(key) && !m.Mapped(key) {
			missing = append(missing, key)
		}
	}
	return missing
}
