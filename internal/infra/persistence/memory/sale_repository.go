package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"salesinsight/internal/domain/entity"
	"salesinsight/internal/domain/repository"

	"github.com/google/uuid"
)

type saleRepository struct {
	*repositoryFactory
}

func (repo *saleRepository) FindSaleRecord(_ context.Context, productID uuid.UUID, month entity.Month) (*entity.SaleRecord, error) {
	for _, sale := range repo.state.sales {
		if sale.ProductID == productID && sale.Month == month {
			found := sale

			return &found, nil
		}
	}

	return nil, repository.ErrSaleRecordNotFound
}

func (repo *saleRepository) CreateSaleRecord(_ context.Context, record *entity.SaleRecord) error {
	if err := repo.writable(); err != nil {
		return err
	}
	if _, ok := repo.state.products[record.ProductID]; !ok {
		return repository.ErrProductNotFound
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = record.CreatedAt
	}
	repo.state.sales[record.ID] = *record

	return nil
}

func (repo *saleRepository) UpdateSaleRecord(_ context.Context, record *entity.SaleRecord) error {
	if err := repo.writable(); err != nil {
		return err
	}

	existing, ok := repo.state.sales[record.ID]
	if !ok {
		return repository.ErrSaleRecordNotFound
	}
	existing.SalesCount = record.SalesCount
	existing.Revenue = record.Revenue
	existing.UpdatedAt = record.UpdatedAt
	repo.state.sales[record.ID] = existing

	return nil
}

func (repo *saleRepository) ListSalesByProduct(_ context.Context, productID uuid.UUID) ([]*entity.SaleRecord, error) {
	records := make([]*entity.SaleRecord, 0)
	for _, sale := range repo.state.sales {
		if sale.ProductID == productID {
			found := sale
			records = append(records, &found)
		}
	}
	slices.SortFunc(records, func(a, b *entity.SaleRecord) int {
		return compareMonths(a.Month, b.Month)
	})

	return records, nil
}

func (repo *saleRepository) ListSalesByCompany(_ context.Context, companyID uuid.UUID, limit int) ([]*entity.CompanySale, error) {
	records := make([]*entity.CompanySale, 0)
	for _, sale := range repo.state.sales {
		product, ok := repo.state.products[sale.ProductID]
		if !ok || product.CompanyID != companyID {
			continue
		}
		records = append(records, &entity.CompanySale{
			SaleRecord: sale,
			ModelName:  product.ModelName,
			Region:     product.Region,
		})
	}
	slices.SortFunc(records, func(a, b *entity.CompanySale) int {
		if c := compareMonths(b.Month, a.Month); c != 0 {
			return c
		}
		if c := strings.Compare(a.ModelName, b.ModelName); c != 0 {
			return c
		}

		return strings.Compare(a.Region, b.Region)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

func compareMonths(a, b entity.Month) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}
