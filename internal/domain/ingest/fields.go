// Package ingest normalizes sales rows written in either supported CSV column convention
// into canonical records.
package ingest

import (
	"strings"
	"unicode"
)

// Field is a canonical logical column.
type Field string

const (
	FieldModel         Field = "model"
	FieldSalesCount    Field = "sales_count"
	FieldMonth         Field = "month"
	FieldPrice         Field = "price"
	FieldRegion        Field = "region"
	FieldDiscountPrice Field = "discount_price"
	FieldBatteryLife   Field = "battery_life"
)

// fieldSpec maps a logical field to its header spelling in each convention.
// The first spelling wins when both columns carry a value.
type fieldSpec struct {
	field     Field
	spellings [2]string
	required  bool
}

var fieldTable = []fieldSpec{
	{field: FieldModel, spellings: [2]string{"Model", "model_name"}, required: true},
	{field: FieldSalesCount, spellings: [2]string{"Sales_Count", "sales_count"}, required: true},
	{field: FieldMonth, spellings: [2]string{"Month", "date"}, required: true},
	{field: FieldPrice, spellings: [2]string{"Price_Rs", "price"}, required: true},
	{field: FieldRegion, spellings: [2]string{"Region", "region"}},
	{field: FieldDiscountPrice, spellings: [2]string{"Discount_Price_Rs", "discount_price"}},
	{field: FieldBatteryLife, spellings: [2]string{"Battery_Life_Days", "battery_life"}},
}

// DefaultFeatureColumns are always treated as yes/no feature flags.
var DefaultFeatureColumns = []string{
	"Heart_Rate",
	"SpO2",
	"Sleep_Tracking",
	"Step_Count",
	"Calorie_Tracking",
	"Stress_Monitor",
	"Connectivity",
	"WiFi",
	"Smart_Fitness_Features",
}

// FeatureName canonicalizes a feature column header to lower snake_case.
func FeatureName(header string) string {
	var b strings.Builder
	b.Grow(len(header))

	pendingSep := false
	for _, r := range strings.TrimSpace(header) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))

			continue
		}
		pendingSep = true
	}

	return b.String()
}

// ParseBool accepts Yes/No, true/false and 1/0 in any case.
func ParseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1":
		return true, true
	case "no", "false", "0":
		return false, true
	default:
		return false, false
	}
}

func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}
