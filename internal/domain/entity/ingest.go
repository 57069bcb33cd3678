package entity

// FailureKind classifies why a CSV row was rejected.
type FailureKind string

const (
	// FailureSchema means a required value was missing or the row shape was wrong.
	FailureSchema FailureKind = "schema"
	// FailureType means a value could not be parsed into its field type.
	FailureType FailureKind = "type"
)

// RowFailure describes one rejected row.
type RowFailure struct {
	Row    int         `json:"row"` // Line number in the file; the header is line 1.
	Field  string      `json:"field,omitempty"`
	Kind   FailureKind `json:"kind"`
	Reason string      `json:"reason"`
}

// IngestResult reports the outcome of ingesting one file or one manual row.
type IngestResult struct {
	ProductsCreated    int          `json:"products_created"`
	ProductsUpdated    int          `json:"products_updated"`
	SalesAdded         int          `json:"sales_added"`
	SaleRecordsCreated int          `json:"sale_records_created"`
	UnitsAdded         int64        `json:"units_added"`
	RowsSucceeded      int          `json:"rows_succeeded"`
	Failures           []RowFailure `json:"failures"`
	IgnoredColumns     []string     `json:"ignored_columns"`
	UploadKey          string       `json:"upload_key,omitempty"`
}

// HasFailures reports whether at least one row was rejected.
func (r *IngestResult) HasFailures() bool {
	return len(r.Failures) > 0
}
