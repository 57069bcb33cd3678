package errors

import (
	"fmt"
	"net/http"
	"strings"

	"salesinsight/internal/domain/entity"
)

// SchemaError reports a missing required column or value. Row is 0 for file-level problems.
type SchemaError struct {
	Field  string
	Row    int
	Reason string
}

// NewSchemaError creates a SchemaError for a field at a row (0 for the header).
func NewSchemaError(field string, row int, reason string) *SchemaError {
	return &SchemaError{Field: field, Row: row, Reason: reason}
}

func (e *SchemaError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("schema error at row %d, field %q: %s", e.Row, e.Field, e.Reason)
	}

	return fmt.Sprintf("schema error, field %q: %s", e.Field, e.Reason)
}

func (e *SchemaError) HTTPCode() int     { return http.StatusBadRequest }
func (e *SchemaError) ErrorCode() string { return "SCHEMA_ERROR" }
func (e *SchemaError) Message() string   { return "The uploaded data does not match a supported schema" }
func (e *SchemaError) Details() string   { return e.Error() }

// Failure converts the error into a row failure entry.
func (e *SchemaError) Failure() entity.RowFailure {
	return entity.RowFailure{Row: e.Row, Field: e.Field, Kind: entity.FailureSchema, Reason: e.Reason}
}

// TypeError reports a value that could not be parsed for its field.
type TypeError struct {
	Field  string
	Row    int
	Value  string
	Reason string
}

// NewTypeError creates a TypeError for a field value at a row.
func NewTypeError(field string, row int, value, reason string) *TypeError {
	return &TypeError{Field: field, Row: row, Value: value, Reason: reason}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error at row %d, field %q, value %q: %s", e.Row, e.Field, e.Value, e.Reason)
}

func (e *TypeError) HTTPCode() int     { return http.StatusBadRequest }
func (e *TypeError) ErrorCode() string { return "TYPE_ERROR" }
func (e *TypeError) Message() string   { return "A field value could not be parsed" }
func (e *TypeError) Details() string   { return e.Error() }

// Failure converts the error into a row failure entry.
func (e *TypeError) Failure() entity.RowFailure {
	return entity.RowFailure{
		Row:    e.Row,
		Field:  e.Field,
		Kind:   entity.FailureType,
		Reason: fmt.Sprintf("%s (value %q)", e.Reason, e.Value),
	}
}

// IngestionFailedError is returned when no row of an upload could be applied.
type IngestionFailedError struct {
	Result *entity.IngestResult
}

func (e *IngestionFailedError) Error() string {
	return fmt.Sprintf("ingestion failed: no rows succeeded (%d failures)", len(e.Result.Failures))
}

func (e *IngestionFailedError) HTTPCode() int     { return http.StatusUnprocessableEntity }
func (e *IngestionFailedError) ErrorCode() string { return "INGESTION_FAILED" }
func (e *IngestionFailedError) Message() string   { return "No rows of the upload could be ingested" }

// Details lists the first few failures.
func (e *IngestionFailedError) Details() string {
	const maxListed = 5

	if e.Result == nil || len(e.Result.Failures) == 0 {
		return "the upload contained no data rows"
	}

	parts := make([]string, 0, maxListed)
	for i, failure := range e.Result.Failures {
		if i == maxListed {
			parts = append(parts, fmt.Sprintf("and %d more", len(e.Result.Failures)-maxListed))

			break
		}
		parts = append(parts, fmt.Sprintf("row %d %s: %s", failure.Row, failure.Field, failure.Reason))
	}

	return strings.Join(parts, "; ")
}
