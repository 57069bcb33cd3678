package ingest

import (
	"strings"
	"testing"

	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, csvText string, extraFeatures ...string) *Parsed {
	t.Helper()

	parsed, err := NewNormalizer(extraFeatures...).ParseCSV(strings.NewReader(csvText))
	require.NoError(t, err)

	return parsed
}

func TestParseCSV_BothConventionsNormalizeIdentically(t *testing.T) {
	first := parse(t, "Month,Region,Model,Battery_Life_Days,Heart_Rate,SpO2,Sales_Count,Price_Rs,Discount_Price_Rs\n"+
		"2026-01,North,Watch Pro,7,Yes,No,150,24999,22999\n"+
		"2026-02-15,South,Band Lite,14,no,yes,80,3999,\n")
	second := parse(t, "date,region,model_name,battery_life,Heart_Rate,SpO2,sales_count,price,discount_price\n"+
		"2026-01,North,Watch Pro,7,true,false,150,24999,22999\n"+
		"2026-02,South,Band Lite,14,0,1,80,3999,\n")

	require.Empty(t, first.Failures)
	require.Empty(t, second.Failures)
	assert.Equal(t, first.Records, second.Records)

	watch := first.Records[0]
	assert.Equal(t, "Watch Pro", watch.Model)
	assert.Equal(t, "North", watch.Region)
	assert.Equal(t, entity.Month{Year: 2026, Month: 1}, watch.Month)
	assert.Equal(t, int64(150), watch.SalesCount)
	assert.True(t, decimal.NewFromInt(24999).Equal(watch.Price))
	require.NotNil(t, watch.DiscountPrice)
	assert.True(t, decimal.NewFromInt(22999).Equal(*watch.DiscountPrice))
	require.NotNil(t, watch.BatteryLife)
	assert.Equal(t, 7.0, *watch.BatteryLife)
	assert.Equal(t, map[string]bool{"heart_rate": true, "spo2": false}, watch.Features)

	band := first.Records[1]
	assert.Equal(t, entity.Month{Year: 2026, Month: 2}, band.Month)
	assert.Nil(t, band.DiscountPrice)
}

func TestParseCSV_BadRowDoesNotBlockOthers(t *testing.T) {
	parsed := parse(t, "Model,Sales_Count,Month,Price_Rs\n"+
		"Watch Pro,150,2026-01,24999\n"+
		"Watch Pro,lots,2026-02,24999\n"+
		"Band Lite,80,2026-01,3999\n")

	require.Len(t, parsed.Records, 2)
	require.Len(t, parsed.Failures, 1)

	failure := parsed.Failures[0]
	assert.Equal(t, 3, failure.Row)
	assert.Equal(t, "sales_count", failure.Field)
	assert.Equal(t, entity.FailureType, failure.Kind)
	assert.Equal(t, 2, parsed.Records[0].Row)
	assert.Equal(t, 4, parsed.Records[1].Row)
}

func TestParseCSV_MalformedQuotingIsRowFailure(t *testing.T) {
	parsed := parse(t, "Model,Sales_Count,Month,Price_Rs\n"+
		"Watch Pro,150,2026-01,24999\n"+
		"Watch 1.5\" Band,10,2026-01,4999\n"+
		"Band Lite,80,2026-01,3999,lots\n"+
		"Band Max,20,2026-02,5999\n")

	require.Len(t, parsed.Records, 2)
	assert.Equal(t, "Watch Pro", parsed.Records[0].Model)
	assert.Equal(t, "Band Max", parsed.Records[1].Model)

	require.Len(t, parsed.Failures, 2)
	assert.Equal(t, 3, parsed.Failures[0].Row)
	assert.Equal(t, entity.FailureSchema, parsed.Failures[0].Kind)
	assert.Contains(t, parsed.Failures[0].Reason, "bare \"")
	assert.Equal(t, 4, parsed.Failures[1].Row)
}

func TestParseCSV_MissingRequiredColumnIsFatal(t *testing.T) {
	_, err := NewNormalizer().ParseCSV(strings.NewReader("Model,Month,Price_Rs\nWatch,2026-01,10\n"))
	require.Error(t, err)

	var schemaErr *domainerrors.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "sales_count", schemaErr.Field)
	assert.Equal(t, 0, schemaErr.Row)
}

func TestParseCSV_EmptyFile(t *testing.T) {
	_, err := NewNormalizer().ParseCSV(strings.NewReader(""))

	var schemaErr *domainerrors.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "header", schemaErr.Field)
}

func TestParseCSV_FirstConventionWinsWhenBothPresent(t *testing.T) {
	parsed := parse(t, "Model,model_name,Sales_Count,Month,Price_Rs,price\n"+
		"Watch Pro,Legacy Name,10,2026-01,100,90\n"+
		",Fallback Name,10,2026-01,,90\n")

	require.Len(t, parsed.Records, 2)
	assert.Equal(t, "Watch Pro", parsed.Records[0].Model)
	assert.True(t, decimal.NewFromInt(100).Equal(parsed.Records[0].Price))
	assert.Equal(t, "Fallback Name", parsed.Records[1].Model)
	assert.True(t, decimal.NewFromInt(90).Equal(parsed.Records[1].Price))
}

func TestParseCSV_EmptyRequiredValue(t *testing.T) {
	parsed := parse(t, "Model,Sales_Count,Month,Price_Rs\n,10,2026-01,100\n")

	require.Empty(t, parsed.Records)
	require.Len(t, parsed.Failures, 1)
	assert.Equal(t, entity.FailureSchema, parsed.Failures[0].Kind)
	assert.Equal(t, "model", parsed.Failures[0].Field)
	assert.Equal(t, 2, parsed.Failures[0].Row)
}

func TestParseCSV_FeatureColumns(t *testing.T) {
	parsed := parse(t, "Model,Sales_Count,Month,Price_Rs,Display_Type,Has_GPS,Sleep_Tracking,Strap\n"+
		"Watch Pro,10,2026-01,100,AMOLED,,YES,Leather\n"+
		"Watch Max,10,2026-01,100,LCD,Yes,,Steel\n")

	require.Empty(t, parsed.Failures)
	assert.Equal(t, []string{"Display_Type", "Strap"}, parsed.IgnoredColumns)
	assert.Equal(t, map[string]bool{"sleep_tracking": true}, parsed.Records[0].Features)
	assert.Equal(t, map[string]bool{"has_gps": true}, parsed.Records[1].Features)
}

func TestParseCSV_NumericColumnIsNotAFeature(t *testing.T) {
	parsed := parse(t, "Model,Sales_Count,Month,Price_Rs,Warranty_Years,Water_Resistant\n"+
		"Watch Pro,10,2026-01,100,1,yes\n"+
		"Watch Max,20,2026-01,200,2,\n"+
		"Band Lite,30,2026-01,50,3,0\n")

	require.Empty(t, parsed.Failures)
	require.Len(t, parsed.Records, 3)
	assert.Equal(t, []string{"Warranty_Years"}, parsed.IgnoredColumns)
	assert.Equal(t, map[string]bool{"water_resistant": true}, parsed.Records[0].Features)
	assert.Equal(t, map[string]bool{"water_resistant": false}, parsed.Records[2].Features)
}

func TestParseCSV_InvalidBooleanIsTypeError(t *testing.T) {
	parsed := parse(t, "Model,Sales_Count,Month,Price_Rs,Heart_Rate\nWatch,10,2026-01,100,maybe\n")

	require.Len(t, parsed.Failures, 1)
	assert.Equal(t, "heart_rate", parsed.Failures[0].Field)
	assert.Equal(t, entity.FailureType, parsed.Failures[0].Kind)
}

func TestParseCSV_NumericValidation(t *testing.T) {
	parsed := parse(t, "Model,Sales_Count,Month,Price_Rs,Battery_Life_Days\n"+
		"A,150.0,2026-01,100,5\n"+
		"B,150.5,2026-01,100,5\n"+
		"C,10,2026-01,-1,5\n"+
		"D,10,2026-13,100,5\n"+
		"E,10,2026-01,100,-3\n")

	require.Len(t, parsed.Records, 1)
	assert.Equal(t, int64(150), parsed.Records[0].SalesCount)

	fields := make([]string, 0, len(parsed.Failures))
	for _, failure := range parsed.Failures {
		fields = append(fields, failure.Field)
	}
	assert.Equal(t, []string{"sales_count", "price", "month", "battery_life"}, fields)
}

func TestParseCSV_ExtraFieldsAndBlankRows(t *testing.T) {
	parsed := parse(t, "\ufeffModel,Sales_Count,Month,Price_Rs\n"+
		"A,1,2026-01,100,unexpected\n"+
		",,,\n"+
		"B,2,2026-01,100\n")

	require.Len(t, parsed.Records, 1)
	assert.Equal(t, "B", parsed.Records[0].Model)
	require.Len(t, parsed.Failures, 1)
	assert.Equal(t, 2, parsed.Failures[0].Row)
	assert.Equal(t, entity.FailureSchema, parsed.Failures[0].Kind)
}

func TestParseCSV_RegisteredExtraFeature(t *testing.T) {
	parsed := parse(t, "Model,Sales_Count,Month,Price_Rs,NFC\nA,1,2026-01,100,\nB,1,2026-01,100,Yes\n", "NFC")

	require.Empty(t, parsed.Failures)
	assert.Empty(t, parsed.IgnoredColumns)
	assert.Equal(t, map[string]bool{"nfc": true}, parsed.Records[1].Features)
}

func TestNormalizeFields(t *testing.T) {
	record, ignored, err := NewNormalizer().NormalizeFields(map[string]string{
		"model_name":  "Watch Pro",
		"sales_count": "25",
		"date":        "2026-03-09",
		"price":       "24999",
		"Heart_Rate":  "Yes",
		"color":       "black",
	})
	require.NoError(t, err)

	assert.Equal(t, "Watch Pro", record.Model)
	assert.Equal(t, entity.Month{Year: 2026, Month: 3}, record.Month)
	assert.Equal(t, int64(25), record.SalesCount)
	assert.Equal(t, map[string]bool{"heart_rate": true}, record.Features)
	assert.Equal(t, []string{"color"}, ignored)
}

func TestNormalizeFields_TypeError(t *testing.T) {
	_, _, err := NewNormalizer().NormalizeFields(map[string]string{
		"Model":       "Watch Pro",
		"Sales_Count": "-4",
		"Month":       "2026-03",
		"Price_Rs":    "24999",
	})

	var typeErr *domainerrors.TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "sales_count", typeErr.Field)
}

func TestFeatureName(t *testing.T) {
	tests := map[string]string{
		"Heart_Rate":             "heart_rate",
		"SpO2":                   "spo2",
		"Smart Fitness Features": "smart_fitness_features",
		"  WiFi ":                "wifi",
		"GPS-Enabled":            "gps_enabled",
		"__":                     "",
	}

	for input, want := range tests {
		assert.Equal(t, want, FeatureName(input), input)
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"Yes", "YES", "true", "TRUE", "1"} {
		got, ok := ParseBool(v)
		assert.True(t, ok, v)
		assert.True(t, got, v)
	}
	for _, v := range []string{"No", "no", "False", "0"} {
		got, ok := ParseBool(v)
		assert.True(t, ok, v)
		assert.False(t, got, v)
	}
	_, ok := ParseBool("y")
	assert.False(t, ok)
}
