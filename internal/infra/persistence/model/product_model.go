package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. (company_id, model_name, region) is the natural key.
type ProductModel struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key"`
	CompanyID     uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:ux_products_company_key,priority:1"`
	ModelName     string              `gorm:"type:varchar(200);not null;uniqueIndex:ux_products_company_key,priority:2"`
	Region        string              `gorm:"type:varchar(100);not null;default:'';uniqueIndex:ux_products_company_key,priority:3"`
	BatteryLife   *float64            `gorm:"type:double precision"`
	Features      datatypes.JSONMap   `gorm:"type:jsonb;not null;default:'{}'"`
	Price         decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	DiscountPrice decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	SaleRecords []SaleRecordModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// SaleRecordModel mirrors the 'sale_records' table. Month is stored as the first day of the month.
type SaleRecordModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_sale_records_product_month,priority:1"`
	Month      time.Time       `gorm:"type:date;not null;uniqueIndex:ux_sale_records_product_month,priority:2"`
	SalesCount int64           `gorm:"not null"`
	Revenue    decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SaleRecordModel) TableName() string {
	return "sale_records"
}
