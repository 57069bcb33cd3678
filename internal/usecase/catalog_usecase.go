package usecase

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UploadInput is one uploaded CSV file.
type UploadInput struct {
	Filename string
	Data     []byte
	Notes    string
}

// UpdateProductInput changes the attributes of an existing product. Nil fields are left as they are.
// The natural key (model name and region) cannot change.
type UpdateProductInput struct {
	Price              *decimal.Decimal
	DiscountPrice      *decimal.Decimal
	ClearDiscountPrice bool
	BatteryLife        *float64
	Features           map[string]bool // Overwrites the named flags; other flags are kept.
}

// RegionSales is the number of units sold in one region.
type RegionSales map[string]int64

// MonthlySales aggregates one calendar month across the tenant's products.
type MonthlySales struct {
	Month   entity.Month `json:"month"`
	Sales   int64        `json:"sales"`
	Revenue float64      `json:"revenue"`
}

// ProductSales aggregates the whole history of one product.
type ProductSales struct {
	ProductID uuid.UUID `json:"product_id"`
	ModelName string    `json:"model_name"`
	Region    string    `json:"region"`
	Sales     int64     `json:"sales"`
	Revenue   float64   `json:"revenue"`
}

// RevenueStats holds tenant-wide totals.
type RevenueStats struct {
	TotalRevenue        float64 `json:"total_revenue"`
	TotalUnits          int64   `json:"total_units"`
	AverageSellingPrice float64 `json:"average_selling_price"`
	ProductCount        int     `json:"product_count"`
	MonthsCovered       int     `json:"months_covered"`
}

// Analytics is the dashboard view of one tenant's catalog.
type Analytics struct {
	SalesByRegion RegionSales    `json:"sales_by_region"`
	SalesByMonth  []MonthlySales `json:"sales_by_month"` // Ascending by month.
	TopProducts   []ProductSales `json:"top_products"`   // Top five by units sold.
	RevenueStats  RevenueStats   `json:"revenue_stats"`
}

// CatalogUsecase defines the company self-service catalog operations.
// Every operation is bound to the caller's own tenant.
type CatalogUsecase interface {
	// IngestCSV normalizes and reconciles one file atomically. Rows that fail to parse are reported
	// in the result; when none succeed an IngestionFailedError is returned and nothing is written.
	IngestCSV(ctx context.Context, caller *entity.Identity, companyID uuid.UUID, upload *UploadInput) (*entity.IngestResult, error)

	// AddSale ingests a single row given as column/value pairs using the same rules as a file.
	AddSale(ctx context.Context, caller *entity.Identity, companyID uuid.UUID, fields map[string]string) (*entity.IngestResult, error)

	ListProducts(ctx context.Context, caller *entity.Identity, companyID uuid.UUID) ([]*entity.Product, error)
	DeleteProduct(ctx context.Context, caller *entity.Identity, companyID, productID uuid.UUID) error

	// UpdateProduct corrects product attributes. Existing sale records keep the revenue they were stored with.
	UpdateProduct(
		ctx context.Context,
		caller *entity.Identity,
		companyID, productID uuid.UUID,
		input *UpdateProductInput,
	) (*entity.Product, error)

	// ListSales returns sale records, most recent month first. limit <= 0 selects the default.
	ListSales(ctx context.Context, caller *entity.Identity, companyID uuid.UUID, limit int) ([]*entity.CompanySale, error)

	Analytics(ctx context.Context, caller *entity.Identity, companyID uuid.UUID) (*Analytics, error)
}
