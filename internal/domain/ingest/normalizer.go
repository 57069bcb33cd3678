package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Record is one canonical sales row.
type Record struct {
	Row           int
	Model         string
	Region        string
	Month         entity.Month
	SalesCount    int64
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	BatteryLife   *float64
	Features      map[string]bool
}

// Key returns the natural key of the product the record describes.
func (r *Record) Key(companyID uuid.UUID) entity.ProductKey {
	return entity.ProductKey{CompanyID: companyID, ModelName: r.Model, Region: r.Region}
}

// Parsed is the outcome of normalizing a whole file.
type Parsed struct {
	Records        []Record
	Failures       []entity.RowFailure
	IgnoredColumns []string
}

// Normalizer resolves headers against the field table and the feature registry.
type Normalizer struct {
	features map[string]struct{}
}

// NewNormalizer registers DefaultFeatureColumns plus any extra feature columns.
func NewNormalizer(extraFeatures ...string) *Normalizer {
	features := make(map[string]struct{}, len(DefaultFeatureColumns)+len(extraFeatures))
	for _, name := range slices.Concat(DefaultFeatureColumns, extraFeatures) {
		if canonical := FeatureName(name); canonical != "" {
			features[canonical] = struct{}{}
		}
	}

	return &Normalizer{features: features}
}

type featureColumn struct {
	index int
	name  string
}

// Layout is a header resolved to column positions.
type Layout struct {
	columns  map[Field][2]int
	features []featureColumn
	ignored  []string
	width    int
}

type rawRow struct {
	line   int
	values []string
}

// ParseCSV reads a whole file. Row problems, including malformed quoting inside a row, are
// collected as failures; the returned error is reserved for an unreadable header or a missing
// required column.
func (n *Normalizer) ParseCSV(r io.Reader) (*Parsed, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domainerrors.NewSchemaError("header", 0, "file is empty")
	}
	if err != nil {
		return nil, csvError(err)
	}

	var (
		rows     []rawRow
		failures []entity.RowFailure
	)
	for {
		values, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(readErr, &parseErr) {
			failures = append(failures, toFailure(parseErr.StartLine, csvError(readErr)))

			continue
		}
		if readErr != nil {
			return nil, csvError(readErr)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(values) {
			continue
		}
		rows = append(rows, rawRow{line: line, values: values})
	}

	samples := make([][]string, len(rows))
	for i, row := range rows {
		samples[i] = row.values
	}

	layout, err := n.Resolve(header, samples)
	if err != nil {
		return nil, err
	}

	parsed := &Parsed{
		Records:        make([]Record, 0, len(rows)),
		Failures:       failures,
		IgnoredColumns: layout.IgnoredColumns(),
	}
	for _, row := range rows {
		record, rowErr := layout.Normalize(row.line, row.values)
		if rowErr != nil {
			parsed.Failures = append(parsed.Failures, toFailure(row.line, rowErr))

			continue
		}
		parsed.Records = append(parsed.Records, record)
	}
	slices.SortStableFunc(parsed.Failures, func(a, b entity.RowFailure) int { return a.Row - b.Row })

	return parsed, nil
}

// NormalizeFields normalizes a single row supplied as header/value pairs, such as a manual entry.
func (n *Normalizer) NormalizeFields(fields map[string]string) (Record, []string, error) {
	header := slices.Sorted(maps.Keys(fields))
	values := make([]string, len(header))
	for i, key := range header {
		values[i] = fields[key]
	}

	layout, err := n.Resolve(header, [][]string{values})
	if err != nil {
		return Record{}, nil, err
	}

	record, err := layout.Normalize(1, values)
	if err != nil {
		return Record{}, layout.IgnoredColumns(), err
	}

	return record, layout.IgnoredColumns(), nil
}

// Resolve maps header positions to logical fields. Unknown columns become feature flags when they are
// registered features or all of their non-empty sample values are boolean literals; the rest are ignored.
func (n *Normalizer) Resolve(header []string, samples [][]string) (*Layout, error) {
	layout := &Layout{
		columns: make(map[Field][2]int, len(fieldTable)),
		width:   len(header),
	}

	claimed := make([]bool, len(header))
	for _, spec := range fieldTable {
		positions := [2]int{-1, -1}
		for convention, spelling := range spec.spellings {
			if i := findHeader(header, claimed, spelling); i >= 0 {
				positions[convention] = i
				claimed[i] = true
			}
		}
		if spec.required && positions[0] < 0 && positions[1] < 0 {
			return nil, domainerrors.NewSchemaError(string(spec.field), 0,
				fmt.Sprintf("missing required column (expected %q or %q)", spec.spellings[0], spec.spellings[1]))
		}
		layout.columns[spec.field] = positions
	}

	seenFeatures := make(map[string]struct{})
	for i, h := range header {
		if claimed[i] {
			continue
		}
		name := FeatureName(cleanHeader(h))
		if name == "" {
			continue
		}
		if _, dup := seenFeatures[name]; dup {
			layout.ignored = append(layout.ignored, cleanHeader(h))

			continue
		}
		if _, registered := n.features[name]; registered || looksBoolean(samples, i) {
			seenFeatures[name] = struct{}{}
			layout.features = append(layout.features, featureColumn{index: i, name: name})

			continue
		}
		layout.ignored = append(layout.ignored, cleanHeader(h))
	}

	return layout, nil
}

// IgnoredColumns lists header cells that were neither fields nor features.
func (l *Layout) IgnoredColumns() []string {
	return slices.Clone(l.ignored)
}

// Normalize converts one row. The error is a *SchemaError or a *TypeError.
func (l *Layout) Normalize(row int, values []string) (Record, error) {
	if len(values) > l.width {
		return Record{}, domainerrors.NewSchemaError("", row,
			fmt.Sprintf("row has %d fields but the header has %d", len(values), l.width))
	}

	record := Record{Row: row}

	model, err := l.required(FieldModel, row, values)
	if err != nil {
		return Record{}, err
	}
	record.Model = entity.NormalizeKeyPart(model)

	monthValue, err := l.required(FieldMonth, row, values)
	if err != nil {
		return Record{}, err
	}
	if record.Month, err = entity.ParseMonth(monthValue); err != nil {
		return Record{}, domainerrors.NewTypeError(string(FieldMonth), row, monthValue, "expected YYYY-MM or YYYY-MM-DD")
	}

	countValue, err := l.required(FieldSalesCount, row, values)
	if err != nil {
		return Record{}, err
	}
	if record.SalesCount, err = parseCount(countValue); err != nil {
		return Record{}, domainerrors.NewTypeError(string(FieldSalesCount), row, countValue, err.Error())
	}

	priceValue, err := l.required(FieldPrice, row, values)
	if err != nil {
		return Record{}, err
	}
	if record.Price, err = parseAmount(priceValue); err != nil {
		return Record{}, domainerrors.NewTypeError(string(FieldPrice), row, priceValue, err.Error())
	}

	record.Region = entity.NormalizeKeyPart(l.value(FieldRegion, values))

	if v := l.value(FieldDiscountPrice, values); v != "" {
		discount, parseErr := parseAmount(v)
		if parseErr != nil {
			return Record{}, domainerrors.NewTypeError(string(FieldDiscountPrice), row, v, parseErr.Error())
		}
		record.DiscountPrice = &discount
	}

	if v := l.value(FieldBatteryLife, values); v != "" {
		days, parseErr := parseNonNegativeFloat(v)
		if parseErr != nil {
			return Record{}, domainerrors.NewTypeError(string(FieldBatteryLife), row, v, parseErr.Error())
		}
		record.BatteryLife = &days
	}

	record.Features = make(map[string]bool, len(l.features))
	for _, feature := range l.features {
		v := cell(values, feature.index)
		if v == "" {
			continue
		}
		flag, ok := ParseBool(v)
		if !ok {
			return Record{}, domainerrors.NewTypeError(feature.name, row, v, "expected Yes/No, true/false or 1/0")
		}
		record.Features[feature.name] = flag
	}

	return record, nil
}

// value resolves a logical field: the non-empty cell wins, the first convention on conflict.
func (l *Layout) value(field Field, values []string) string {
	positions, ok := l.columns[field]
	if !ok {
		return ""
	}
	if v := cell(values, positions[0]); v != "" {
		return v
	}

	return cell(values, positions[1])
}

func (l *Layout) required(field Field, row int, values []string) (string, error) {
	v := l.value(field, values)
	if v == "" {
		return "", domainerrors.NewSchemaError(string(field), row, "required value is empty")
	}

	return v, nil
}

// findHeader prefers an exact spelling over a case-insensitive one so that files carrying both
// "Sales_Count" and "sales_count" map each column to its own convention.
func findHeader(header []string, claimed []bool, spelling string) int {
	for i, h := range header {
		if !claimed[i] && cleanHeader(h) == spelling {
			return i
		}
	}
	for i, h := range header {
		if !claimed[i] && strings.EqualFold(cleanHeader(h), spelling) {
			return i
		}
	}

	return -1
}

func cell(values []string, index int) string {
	if index < 0 || index >= len(values) {
		return ""
	}

	return strings.TrimSpace(values[index])
}

// looksBoolean reports whether the column has at least one value and every non-empty value is a
// boolean literal.
func looksBoolean(samples [][]string, index int) bool {
	seen := false
	for _, values := range samples {
		v := cell(values, index)
		if v == "" {
			continue
		}
		if _, ok := ParseBool(v); !ok {
			return false
		}
		seen = true
	}

	return seen
}

func isBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}

func parseAmount(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, errors.New("expected a number")
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("must be a non-negative number")
	}

	return d, nil
}

func parseCount(value string) (int64, error) {
	d, err := parseAmount(value)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, errors.New("must be a whole number")
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, errors.New("is too large")
	}

	return d.IntPart(), nil
}

func parseNonNegativeFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("expected a number")
	}
	if f < 0 {
		return 0, errors.New("must be a non-negative number")
	}

	return f, nil
}

func csvError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return domainerrors.NewSchemaError("", parseErr.StartLine, parseErr.Err.Error())
	}

	return errors.Wrap(err, "failed to read csv")
}

func toFailure(row int, err error) entity.RowFailure {
	var schemaErr *domainerrors.SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr.Failure()
	}
	var typeErr *domainerrors.TypeError
	if errors.As(err, &typeErr) {
		return typeErr.Failure()
	}

	return entity.RowFailure{Row: row, Kind: entity.FailureSchema, Reason: err.Error()}
}
