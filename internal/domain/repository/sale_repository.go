package repository

import (
	"context"

	"salesinsight/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSaleRecordNotFound is returned when no record exists for a (product, month) pair.
var ErrSaleRecordNotFound = errors.New("sale record not found")

// SaleRepository defines the interface for monthly sales persistence.
type SaleRepository interface {
	// FindSaleRecord retrieves the record for a product and month. Inside Execute the record stays
	// locked against other writers until the transaction ends.
	FindSaleRecord(ctx context.Context, productID uuid.UUID, month entity.Month) (*entity.SaleRecord, error)

	// CreateSaleRecord persists a new record.
	CreateSaleRecord(ctx context.Context, record *entity.SaleRecord) error

	// UpdateSaleRecord stores new sales_count and revenue values.
	UpdateSaleRecord(ctx context.Context, record *entity.SaleRecord) error

	// ListSalesByProduct returns the product's history ordered by month ascending.
	ListSalesByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.SaleRecord, error)

	// ListSalesByCompany returns the company's records, most recent month first. limit <= 0 means no limit.
	ListSalesByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]*entity.CompanySale, error)
}
