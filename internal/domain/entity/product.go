package entity

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductKey is the natural key of a product within one company.
type ProductKey struct {
	CompanyID uuid.UUID
	ModelName string
	Region    string
}

// Product is derived from ingested sales rows; users never create it directly.
type Product struct {
	ID            uuid.UUID        `json:"id"`
	CompanyID     uuid.UUID        `json:"company_id"`
	ModelName     string           `json:"model_name"`
	Region        string           `json:"region"`
	BatteryLife   *float64         `json:"battery_life,omitempty"` // Days.
	Features      map[string]bool  `json:"features"`               // Open-ended flags, merged by union.
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Key returns the product's natural key.
func (p *Product) Key() ProductKey {
	return ProductKey{CompanyID: p.CompanyID, ModelName: p.ModelName, Region: p.Region}
}

// EffectivePrice is the discount price when present, otherwise the list price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}

	return p.Price
}

// MergeFeatures ORs the given flags into the product. A flag that was true stays true.
func (p *Product) MergeFeatures(flags map[string]bool) {
	if p.Features == nil {
		p.Features = make(map[string]bool, len(flags))
	}
	for name, value := range flags {
		p.Features[name] = p.Features[name] || value
	}
}

// EnabledFeatures returns the names of flags that are true, sorted.
func (p *Product) EnabledFeatures() []string {
	names := make([]string, 0, len(p.Features))
	for _, name := range slices.Sorted(maps.Keys(p.Features)) {
		if p.Features[name] {
			names = append(names, name)
		}
	}

	return names
}

// NormalizeKeyPart collapses inner whitespace and trims a model name or region.
func NormalizeKeyPart(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
