package postgres

import (
	"testing"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestProductMapping(t *testing.T) {
	battery := 7.5
	discount := decimal.RequireFromString("3499")
	product := &entity.Product{
		ID:            uuid.New(),
		CompanyID:     uuid.New(),
		ModelName:     "Watch Pro",
		Region:        "North",
		BatteryLife:   &battery,
		Features:      map[string]bool{"heart_rate": true, "gps": false},
		Price:         decimal.RequireFromString("4999"),
		DiscountPrice: &discount,
	}

	productM := fromProductDomain(product)
	assert.True(t, productM.DiscountPrice.Valid)
	assert.Equal(t, datatypes.JSONMap{"heart_rate": true, "gps": false}, productM.Features)

	back := toProductDomain(productM)
	assert.Equal(t, product.Features, back.Features)
	require.NotNil(t, back.DiscountPrice)
	assert.True(t, discount.Equal(*back.DiscountPrice))
	assert.Equal(t, product.Key(), back.Key())

	productM.DiscountPrice = decimal.NullDecimal{}
	assert.Nil(t, toProductDomain(productM).DiscountPrice)
}

func TestFeatureFlagsTolerateNonBooleans(t *testing.T) {
	flags := toFeatureFlags(datatypes.JSONMap{"spo2": true, "legacy": "yes", "count": float64(1)})

	assert.Equal(t, map[string]bool{"spo2": true, "legacy": false, "count": false}, flags)
	assert.Empty(t, toFeatureFlags(nil))
}

func TestSaleRecordMonthMapping(t *testing.T) {
	record := &entity.SaleRecord{
		ProductID:  uuid.New(),
		Month:      entity.Month{Year: 2025, Month: time.November},
		SalesCount: 150,
		Revenue:    decimal.RequireFromString("749850"),
	}

	saleM := fromSaleDomain(record)
	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), saleM.Month)
	assert.Equal(t, record.Month, toSaleDomain(saleM).Month)
}

func TestOfferDatesDropTimeOfDay(t *testing.T) {
	offerM := &model.OfferModel{
		ID:        uuid.New(),
		Name:      "Flash Sale",
		StartDate: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.FixedZone("IST", 19800)),
		EndDate:   time.Date(2026, time.January, 10, 23, 0, 0, 0, time.UTC),
		IsActive:  true,
	}

	offer := toOfferDomain(offerM)

	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), offer.StartDate)
	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), offer.EndDate)
	assert.True(t, offer.CoversDate(time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC)))
}
