package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecord aggregates the units sold for one product in one month.
type SaleRecord struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Month      Month           `json:"month"`
	SalesCount int64           `json:"sales_count"`
	Revenue    decimal.Decimal `json:"revenue"` // SalesCount × effective price when last written.
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// AddUnits increases the record additively and recomputes revenue at the given price.
func (s *SaleRecord) AddUnits(units int64, effectivePrice decimal.Decimal) {
	s.SalesCount += units
	s.Revenue = effectivePrice.Mul(decimal.NewFromInt(s.SalesCount))
}

// CompanySale is a sale record joined with the identifying fields of its product.
type CompanySale struct {
	SaleRecord
	ModelName string `json:"model_name"`
	Region    string `json:"region"`
}
